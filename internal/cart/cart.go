package cart

import (
	"github.com/nettoria/storefront-backend/pkg/types"
)

// Cart is an ordered collection of line items. Order is insertion order and
// only meaningful for display. The zero value is not usable; call New.
type Cart struct {
	Items []LineItem `json:"items"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []LineItem{}}
}

// Totals aggregates whole-cart prices.
type Totals struct {
	Original   int64 `json:"original"`
	Discounted int64 `json:"discounted"`
	Saved      int64 `json:"saved"`
}

// AddItem inserts the item, replacing in place when an item with the same
// code already exists. Quantities are never merged. Reports whether an
// existing item was replaced.
func (c *Cart) AddItem(item LineItem) bool {
	for i := range c.Items {
		if c.Items[i].Code == item.Code {
			c.Items[i] = item
			return true
		}
	}
	c.Items = append(c.Items, item)
	return false
}

// RemoveItem drops every item with the given code. Removing a code that is
// not present is a no-op; the return value reports whether anything changed.
func (c *Cart) RemoveItem(code string) bool {
	kept := c.Items[:0]
	removed := false
	for _, item := range c.Items {
		if item.Code == code {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	return removed
}

// ItemPatch mutates an existing line item in place. Nil fields are left
// untouched; a non-nil Extras map replaces the whole map.
type ItemPatch struct {
	Name      *string
	Quantity  *int
	UnitPrice *int64
	Duration  *int
	Extras    types.Extras
}

// UpdateItem applies the patch to the item with the given code and
// renormalizes it. Reports false when the code is not in the cart.
func (c *Cart) UpdateItem(code string, patch ItemPatch) (*LineItem, bool) {
	for i := range c.Items {
		if c.Items[i].Code != code {
			continue
		}
		item := &c.Items[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.UnitPrice != nil {
			item.UnitPrice = *patch.UnitPrice
		}
		if patch.Duration != nil {
			item.Duration = *patch.Duration
		}
		if patch.Extras != nil {
			item.Extras = patch.Extras.Clone()
		}
		item.normalize()
		return item, true
	}
	return nil, false
}

// Find returns the item with the given code, or nil.
func (c *Cart) Find(code string) *LineItem {
	for i := range c.Items {
		if c.Items[i].Code == code {
			return &c.Items[i]
		}
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// Len is the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.Items)
}

// ItemCount sums per-item quantities; this is the badge figure.
func (c *Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice aggregates every item's commitment totals.
func (c *Cart) TotalPrice() Totals {
	var totals Totals
	for _, item := range c.Items {
		line := item.TotalPrice()
		totals.Original += line.Original
		totals.Discounted += line.Discounted
	}
	totals.Saved = totals.Original - totals.Discounted
	return totals
}
