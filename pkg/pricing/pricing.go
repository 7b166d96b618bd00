package pricing

import "math"

type durationTier struct {
	MinMonths int
	Discount  float64
}

// Commitment tiers are inclusive on the lower bound: exactly 3, 6 or 12
// months lands in the higher band.
var durationTiers = []durationTier{
	{MinMonths: 12, Discount: 0.20},
	{MinMonths: 6, Discount: 0.15},
	{MinMonths: 3, Discount: 0.10},
}

// DiscountForDuration maps a commitment length in months to a discount
// fraction. Pure and total; unknown inputs fall through to zero.
func DiscountForDuration(months int) float64 {
	for _, tier := range durationTiers {
		if months >= tier.MinMonths {
			return tier.Discount
		}
	}
	return 0
}

// DiscountPercent returns the duration discount as a percentage.
func DiscountPercent(months int) float64 {
	return DiscountForDuration(months) * 100
}

// UnitPriceAfterDiscount applies the duration discount to a unit price in the
// smallest currency unit. Rounding is round-half-to-even.
func UnitPriceAfterDiscount(unit int64, months int) int64 {
	discount := DiscountForDuration(months)
	if discount == 0 || unit <= 0 {
		if unit < 0 {
			return 0
		}
		return unit
	}
	return int64(math.RoundToEven(float64(unit) * (1 - discount)))
}
