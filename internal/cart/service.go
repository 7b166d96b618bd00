package cart

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/nettoria/storefront-backend/pkg/errors"
	"github.com/nettoria/storefront-backend/pkg/logger"
	"github.com/nettoria/storefront-backend/pkg/types"
)

// Service owns cart mutations for a session token. Every mutation is
// load-mutate-save against the Store; there is no cross-request state here.
type Service interface {
	Get(ctx context.Context, token string) (*Cart, error)
	AddItem(ctx context.Context, token string, input LineItemInput) (*Cart, *LineItem, error)
	UpdateItem(ctx context.Context, token, code string, patch ItemPatch) (*LineItem, error)
	RemoveItem(ctx context.Context, token, code string) (*Cart, error)
	Clear(ctx context.Context, token string) error

	SelectService(ctx context.Context, token string, sel types.ServiceSelection) error
	GetSelected(ctx context.Context, token string) (*types.ServiceSelection, error)
	StashEditing(ctx context.Context, token, code string) (*LineItem, error)
	TakeEditing(ctx context.Context, token string) (*LineItem, error)
}

type service struct {
	store Store
	logg  *logger.Logger
}

// NewService builds a cart service backed by the provided store.
func NewService(store Store, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{store: store, logg: logg}, nil
}

// Get returns the session's cart. Unreadable storage degrades to an empty
// cart; the failure is logged, not surfaced.
func (s *service) Get(ctx context.Context, token string) (*Cart, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	return s.load(ctx, token), nil
}

// AddItem normalizes the input and inserts it, replacing any existing item
// with the same code.
func (s *service) AddItem(ctx context.Context, token string, input LineItemInput) (*Cart, *LineItem, error) {
	if err := requireToken(token); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}

	item := NewLineItem(input)
	crt := s.load(ctx, token)
	crt.AddItem(item)

	if err := s.save(ctx, token, crt); err != nil {
		return nil, nil, err
	}
	return crt, crt.Find(item.Code), nil
}

// UpdateItem patches an item in place. This replaces the historical
// remove-and-redirect edit flow with a single mutation.
func (s *service) UpdateItem(ctx context.Context, token, code string, patch ItemPatch) (*LineItem, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	crt := s.load(ctx, token)
	item, ok := crt.UpdateItem(code, patch)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	if err := s.save(ctx, token, crt); err != nil {
		return nil, err
	}
	updated := *item
	return &updated, nil
}

// RemoveItem filters the code out of the cart. Removing an absent code is a
// no-op, not an error.
func (s *service) RemoveItem(ctx context.Context, token, code string) (*Cart, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	crt := s.load(ctx, token)
	if crt.RemoveItem(code) {
		if err := s.save(ctx, token, crt); err != nil {
			return nil, err
		}
	}
	return crt, nil
}

// Clear wipes the cart and its companion slots.
func (s *service) Clear(ctx context.Context, token string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	if err := s.store.Clear(ctx, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

// SelectService records the catalog selection for the configuration page.
func (s *service) SelectService(ctx context.Context, token string, sel types.ServiceSelection) error {
	if err := requireToken(token); err != nil {
		return err
	}
	if err := s.store.PutSelected(ctx, token, sel); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store selection")
	}
	return nil
}

// GetSelected returns the stored catalog selection, or not-found.
func (s *service) GetSelected(ctx context.Context, token string) (*types.ServiceSelection, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	sel, err := s.store.GetSelected(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load selection")
	}
	if sel == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no service selected")
	}
	return sel, nil
}

// StashEditing removes the item from the cart and parks it in the editing
// slot so the configuration page can re-add it.
func (s *service) StashEditing(ctx context.Context, token, code string) (*LineItem, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	crt := s.load(ctx, token)
	item := crt.Find(code)
	if item == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	stashed := *item

	crt.RemoveItem(code)
	if err := s.save(ctx, token, crt); err != nil {
		return nil, err
	}
	if err := s.store.PutEditing(ctx, token, stashed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "stash editing item")
	}
	return &stashed, nil
}

// TakeEditing pops the editing slot, or not-found when it is empty.
func (s *service) TakeEditing(ctx context.Context, token string) (*LineItem, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	item, err := s.store.TakeEditing(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load editing item")
	}
	if item == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no item being edited")
	}
	return item, nil
}

func (s *service) load(ctx context.Context, token string) *Cart {
	crt, err := s.store.Load(ctx, token)
	if err != nil {
		if s.logg != nil {
			ctx = s.logg.WithCartToken(ctx, token)
			s.logg.Error(ctx, "cart load failed, serving empty cart", err)
		}
		return New()
	}
	return crt
}

func (s *service) save(ctx context.Context, token string, crt *Cart) error {
	if err := s.store.Save(ctx, token, crt); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return nil
}

func requireToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	return nil
}
