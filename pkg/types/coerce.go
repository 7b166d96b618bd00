package types

import (
	"encoding/json"

	"github.com/nettoria/storefront-backend/pkg/pricing"
)

// Amount is a monetary value in the smallest currency unit. Storefront pages
// historically posted prices either as numbers or as display strings like
// "599,000 تومان"; decoding tolerates both and coerces anything malformed to
// zero instead of failing the request.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var number int64
	if err := json.Unmarshal(data, &number); err == nil {
		if number < 0 {
			number = 0
		}
		*a = Amount(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*a = Amount(pricing.ParseAmount(text))
		return nil
	}

	*a = 0
	return nil
}

func (a Amount) Int64() int64 {
	return int64(a)
}

// Count is a positive integer (quantity or duration) that tolerates string
// input and defaults to 1 when the payload cannot be parsed.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	var number int
	if err := json.Unmarshal(data, &number); err == nil {
		if number < 1 {
			number = 1
		}
		*c = Count(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = Count(pricing.ParseQuantity(text))
		return nil
	}

	*c = 1
	return nil
}

func (c Count) Int() int {
	return int(c)
}
