package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nettoria/storefront-backend/internal/cart"
	"github.com/nettoria/storefront-backend/pkg/db/models"
	pkgerrors "github.com/nettoria/storefront-backend/pkg/errors"
	"github.com/nettoria/storefront-backend/pkg/logger"
)

// Service derives summaries and converts carts into archived orders.
type Service interface {
	Summarize(ctx context.Context, token string) (Summary, error)
	Checkout(ctx context.Context, token string) (*models.Order, error)
	GetOrder(ctx context.Context, token string, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, token string) ([]models.Order, error)
}

type service struct {
	carts cart.Service
	repo  OrderRepository
	calc  Calculator
	logg  *logger.Logger
}

// NewService builds a checkout service on top of the cart service and order
// repository.
func NewService(carts cart.Service, repo OrderRepository, calc Calculator, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{carts: carts, repo: repo, calc: calc, logg: logg}, nil
}

// Summarize computes the checkout breakdown for the session's current cart.
func (s *service) Summarize(ctx context.Context, token string) (Summary, error) {
	crt, err := s.carts.Get(ctx, token)
	if err != nil {
		return Summary{}, err
	}
	return s.calc.Summarize(crt), nil
}

// Checkout freezes the cart into an order and clears the session's slots.
// An empty cart cannot be checked out.
func (s *service) Checkout(ctx context.Context, token string) (*models.Order, error) {
	crt, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if crt.Len() == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	summary := s.calc.Summarize(crt)
	order := &models.Order{
		CartToken: token,
		Items:     toOrderItems(crt.Items),
		Original:  summary.Original,
		Subtotal:  summary.Subtotal,
		Saved:     summary.Saved,
		Tax:       summary.Tax,
		Total:     summary.Total,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	// The order is already committed; a failed cleanup only leaves a stale
	// cart behind, so log it and move on.
	if err := s.carts.Clear(ctx, token); err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithCartToken(ctx, token), "clearing cart after checkout failed", err)
	}

	return created, nil
}

// GetOrder loads an order, restricted to the session that placed it.
func (s *service) GetOrder(ctx context.Context, token string, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order.CartToken != token {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

// ListOrders returns the session's order history.
func (s *service) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	rows, err := s.repo.ListByCartToken(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return rows, nil
}

func toOrderItems(items []cart.LineItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderItem{
			Name:      item.Name,
			Code:      item.Code,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Kind:      item.Kind,
			Duration:  item.Duration,
			Extras:    item.Extras,
		})
	}
	return out
}
