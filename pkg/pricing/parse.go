package pricing

import "strconv"

// ParseAmount normalizes a displayed price into the smallest currency unit.
// Everything that is not an ASCII digit (thousand separators, currency words,
// whitespace) is discarded, so "599,000 تومان" becomes 599000. Malformed or
// empty input coerces to zero; this never fails.
func ParseAmount(raw string) int64 {
	digits := make([]byte, 0, len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, byte(r))
		}
	}
	if len(digits) == 0 {
		return 0
	}
	value, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseQuantity coerces raw input into a positive quantity, defaulting to 1.
func ParseQuantity(raw string) int {
	return parsePositive(raw, 1)
}

// ParseDuration coerces raw input into a positive month count, defaulting to 1.
func ParseDuration(raw string) int {
	return parsePositive(raw, 1)
}

func parsePositive(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
