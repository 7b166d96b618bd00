package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nettoria/storefront-backend/internal/cart"
	"github.com/nettoria/storefront-backend/pkg/db/models"
	"github.com/nettoria/storefront-backend/pkg/enums"
	pkgerrors "github.com/nettoria/storefront-backend/pkg/errors"
)

type stubOrderRepo struct {
	orders map[uuid.UUID]*models.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[uuid.UUID]*models.Order{}}
}

func (r *stubOrderRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = enums.OrderStatusPending
	}
	stored := *order
	r.orders[order.ID] = &stored
	return order, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *stubOrderRepo) ListByCartToken(_ context.Context, token string) ([]models.Order, error) {
	var rows []models.Order
	for _, order := range r.orders {
		if order.CartToken == token {
			rows = append(rows, *order)
		}
	}
	return rows, nil
}

func newTestCheckout(t *testing.T) (Service, cart.Service, *stubOrderRepo) {
	t.Helper()

	carts, err := cart.NewService(cart.NewMemoryStore(), nil)
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}

	repo := newStubOrderRepo()
	svc, err := NewService(carts, repo, NewCalculator(0), nil)
	if err != nil {
		t.Fatalf("checkout service: %v", err)
	}
	return svc, carts, repo
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestCheckout(t)
	_, err := svc.Checkout(context.Background(), "tok")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCheckout_CreatesOrderAndClearsCart(t *testing.T) {
	t.Parallel()

	svc, carts, repo := newTestCheckout(t)
	ctx := context.Background()

	if _, _, err := carts.AddItem(ctx, "tok", cart.LineItemInput{
		Name:      "VPS",
		Code:      "vps",
		UnitPrice: 100000,
		Duration:  6,
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	order, err := svc.Checkout(ctx, "tok")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.ID == uuid.Nil {
		t.Fatal("order id not assigned")
	}
	if order.Status != enums.OrderStatusPending {
		t.Fatalf("status = %s", order.Status)
	}
	if order.Subtotal != 510000 || order.Tax != 45900 || order.Total != 555900 {
		t.Fatalf("unexpected amounts: %+v", order)
	}
	if len(order.Items) != 1 || order.Items[0].Code != "vps" {
		t.Fatalf("unexpected items: %+v", order.Items)
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected one stored order, got %d", len(repo.orders))
	}

	crt, err := carts.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if crt.Len() != 0 {
		t.Fatal("cart should be cleared after checkout")
	}
}

func TestSummarize_UsesCurrentCart(t *testing.T) {
	t.Parallel()

	svc, carts, _ := newTestCheckout(t)
	ctx := context.Background()

	if _, _, err := carts.AddItem(ctx, "tok", cart.LineItemInput{Name: "VPS", Code: "vps", UnitPrice: 100000, Duration: 6}); err != nil {
		t.Fatalf("add: %v", err)
	}

	summary, err := svc.Summarize(ctx, "tok")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Total != 555900 {
		t.Fatalf("total = %d", summary.Total)
	}
}

func TestGetOrder_RestrictedToOwningSession(t *testing.T) {
	t.Parallel()

	svc, carts, _ := newTestCheckout(t)
	ctx := context.Background()

	if _, _, err := carts.AddItem(ctx, "tok", cart.LineItemInput{Name: "VPS", Code: "vps", UnitPrice: 100000}); err != nil {
		t.Fatalf("add: %v", err)
	}
	order, err := svc.Checkout(ctx, "tok")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	got, err := svc.GetOrder(ctx, "tok", order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.ID != order.ID {
		t.Fatalf("unexpected order: %+v", got)
	}

	_, err = svc.GetOrder(ctx, "someone-else", order.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found for foreign session, got %v", err)
	}

	_, err = svc.GetOrder(ctx, "tok", uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found for unknown id, got %v", err)
	}
}

func TestListOrders(t *testing.T) {
	t.Parallel()

	svc, carts, _ := newTestCheckout(t)
	ctx := context.Background()

	if _, _, err := carts.AddItem(ctx, "tok", cart.LineItemInput{Name: "VPS", Code: "vps", UnitPrice: 100000}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Checkout(ctx, "tok"); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	orders, err := svc.ListOrders(ctx, "tok")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}

	empty, err := svc.ListOrders(ctx, "other")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no orders, got %d", len(empty))
	}
}
