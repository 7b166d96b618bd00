package cart

import (
	"context"
	"encoding/json"

	"github.com/nettoria/storefront-backend/pkg/types"
)

// Store is the persistence boundary for per-session cart state. It mirrors
// the three storage slots the storefront pages always used: the cart
// document, the selected-service slot written by catalog pages, and the
// editing slot used to carry an item back into the configuration page.
//
// Implementations do not coordinate concurrent writers; two sessions sharing
// a token race and the last save wins.
type Store interface {
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, token string, crt *Cart) error
	Clear(ctx context.Context, token string) error

	PutSelected(ctx context.Context, token string, sel types.ServiceSelection) error
	GetSelected(ctx context.Context, token string) (*types.ServiceSelection, error)

	PutEditing(ctx context.Context, token string, item LineItem) error
	TakeEditing(ctx context.Context, token string) (*LineItem, error)
}

// encodeItems renders the persisted wire format: a bare JSON array of items.
func encodeItems(crt *Cart) ([]byte, error) {
	if crt == nil || crt.Items == nil {
		return json.Marshal([]LineItem{})
	}
	return json.Marshal(crt.Items)
}

// decodeItems reconstructs a cart from the stored array, re-running
// construction normalization on every item as the original loader did.
func decodeItems(data []byte) (*Cart, error) {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	crt := New()
	for _, item := range items {
		item.normalize()
		if item.Code == "" {
			item.Code = NewCode(item.Kind)
		}
		crt.AddItem(item)
	}
	return crt, nil
}
