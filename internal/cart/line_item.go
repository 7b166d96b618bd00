package cart

import (
	"fmt"
	"strings"
	"time"

	"github.com/nettoria/storefront-backend/pkg/pricing"
	"github.com/nettoria/storefront-backend/pkg/types"
)

// LineItem is one purchasable entry in a cart: a service plan instance with a
// chosen duration and configuration extras. UnitPrice is the monthly price in
// the smallest currency unit. The JSON layout is the persisted wire format.
type LineItem struct {
	Name      string       `json:"name"`
	Code      string       `json:"code"`
	Quantity  int          `json:"quantity"`
	UnitPrice int64        `json:"price"`
	Kind      string       `json:"type"`
	Duration  int          `json:"duration"`
	Extras    types.Extras `json:"extras,omitempty"`
}

// LineItemInput carries raw construction values. Numeric fields are expected
// pre-coerced (see types.Amount/types.Count); normalization still clamps them.
type LineItemInput struct {
	Name      string
	Code      string
	Quantity  int
	UnitPrice int64
	Kind      string
	Duration  int
	Extras    types.Extras
}

// NewLineItem builds a normalized line item. Construction never fails:
// malformed numeric input becomes the documented defaults (quantity 1,
// duration 1, price 0) and a missing code is generated.
func NewLineItem(input LineItemInput) LineItem {
	item := LineItem{
		Name:      strings.TrimSpace(input.Name),
		Code:      strings.TrimSpace(input.Code),
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		Kind:      strings.TrimSpace(input.Kind),
		Duration:  input.Duration,
		Extras:    input.Extras.Clone(),
	}
	item.normalize()
	if item.Code == "" {
		item.Code = NewCode(item.Kind)
	}
	return item
}

func (li *LineItem) normalize() {
	if li.Quantity < 1 {
		li.Quantity = 1
	}
	if li.Duration < 1 {
		li.Duration = 1
	}
	if li.UnitPrice < 0 {
		li.UnitPrice = 0
	}
}

// Discount returns the duration-tier discount fraction for this item.
func (li LineItem) Discount() float64 {
	return pricing.DiscountForDuration(li.Duration)
}

// FinalPrice is the per-month price pair shown next to an item.
type FinalPrice struct {
	Original        int64   `json:"original"`
	Discounted      int64   `json:"discounted"`
	DiscountPercent float64 `json:"discount_percent"`
}

// FinalPrice applies the duration discount to the unit price.
func (li LineItem) FinalPrice() FinalPrice {
	return FinalPrice{
		Original:        li.UnitPrice,
		Discounted:      pricing.UnitPriceAfterDiscount(li.UnitPrice, li.Duration),
		DiscountPercent: pricing.DiscountPercent(li.Duration),
	}
}

// TotalPrice is the whole-commitment price pair for an item.
type TotalPrice struct {
	Original   int64 `json:"original"`
	Discounted int64 `json:"discounted"`
}

// TotalPrice multiplies the per-unit prices by duration and quantity. The
// discounted side uses the already-rounded per-unit price, so line totals are
// exact multiples of the displayed monthly figure.
func (li LineItem) TotalPrice() TotalPrice {
	final := li.FinalPrice()
	factor := int64(li.Duration) * int64(li.Quantity)
	return TotalPrice{
		Original:   final.Original * factor,
		Discounted: final.Discounted * factor,
	}
}

// NewCode generates an item code in the historical {KIND}-{timestamp} shape.
// Uniqueness is only guaranteed within one cart at insert time.
func NewCode(kind string) string {
	prefix := strings.ToUpper(strings.TrimSpace(kind))
	if prefix == "" {
		prefix = "ITEM"
	}
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}
