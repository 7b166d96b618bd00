package checkout

import (
	"math"

	"github.com/nettoria/storefront-backend/internal/cart"
)

// DefaultTaxRate is the VAT-equivalent applied when none is configured.
const DefaultTaxRate = 0.09

// Summary is the checkout breakdown derived from a cart snapshot. Subtotal
// is post-discount; tax applies to the discounted figure.
type Summary struct {
	Original  int64 `json:"original"`
	Subtotal  int64 `json:"subtotal"`
	Saved     int64 `json:"saved"`
	Tax       int64 `json:"tax"`
	Total     int64 `json:"total"`
	ItemCount int   `json:"item_count"`
}

// Calculator derives checkout summaries with a fixed tax rate.
type Calculator struct {
	rate float64
}

// NewCalculator builds a calculator; non-positive rates fall back to the default.
func NewCalculator(rate float64) Calculator {
	if rate <= 0 {
		rate = DefaultTaxRate
	}
	return Calculator{rate: rate}
}

// Rate returns the configured tax fraction.
func (c Calculator) Rate() float64 {
	return c.rate
}

// Summarize computes the full breakdown for the cart as it stands.
func (c Calculator) Summarize(crt *cart.Cart) Summary {
	totals := crt.TotalPrice()
	tax := int64(math.RoundToEven(float64(totals.Discounted) * c.rate))
	return Summary{
		Original:  totals.Original,
		Subtotal:  totals.Discounted,
		Saved:     totals.Saved,
		Tax:       tax,
		Total:     totals.Discounted + tax,
		ItemCount: crt.ItemCount(),
	}
}
