package cart

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/nettoria/storefront-backend/pkg/errors"
	"github.com/nettoria/storefront-backend/pkg/types"
)

type failingStore struct {
	*MemoryStore
	loadErr error
	saveErr error
}

func (s *failingStore) Load(ctx context.Context, token string) (*Cart, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.MemoryStore.Load(ctx, token)
}

func (s *failingStore) Save(ctx context.Context, token string, crt *Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.MemoryStore.Save(ctx, token, crt)
}

func newTestService(t *testing.T, store Store) Service {
	t.Helper()
	svc, err := NewService(store, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestService_AddItemAndGet(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	ctx := context.Background()

	crt, item, err := svc.AddItem(ctx, "tok", LineItemInput{
		Name:      "VPS Eco 1",
		Code:      "vps-eco-1",
		UnitPrice: 599000,
		Duration:  12,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item == nil || item.Code != "vps-eco-1" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if crt.Len() != 1 {
		t.Fatalf("cart len = %d", crt.Len())
	}

	loaded, err := svc.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Find("vps-eco-1") == nil {
		t.Fatal("item not persisted")
	}
}

func TestService_AddItemRequiresName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	_, _, err := svc.AddItem(context.Background(), "tok", LineItemInput{Code: "x"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_RequiresToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	if _, err := svc.Get(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank token")
	}
}

func TestService_UpdateItem(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	ctx := context.Background()

	if _, _, err := svc.AddItem(ctx, "tok", LineItemInput{Name: "VPS", Code: "vps", UnitPrice: 100000, Duration: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	duration := 6
	item, err := svc.UpdateItem(ctx, "tok", "vps", ItemPatch{Duration: &duration})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if item.Duration != 6 {
		t.Fatalf("duration = %d", item.Duration)
	}

	_, err = svc.UpdateItem(ctx, "tok", "missing", ItemPatch{Duration: &duration})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestService_RemoveItemIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	ctx := context.Background()

	if _, _, err := svc.AddItem(ctx, "tok", LineItemInput{Name: "VPS", Code: "vps"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	crt, err := svc.RemoveItem(ctx, "tok", "vps")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if crt.Len() != 0 {
		t.Fatalf("cart not empty: %d", crt.Len())
	}

	crt, err = svc.RemoveItem(ctx, "tok", "vps")
	if err != nil {
		t.Fatalf("second remove should be a no-op: %v", err)
	}
	if crt.Len() != 0 {
		t.Fatalf("cart len = %d", crt.Len())
	}
}

func TestService_UnreadableStoreDegradesToEmptyCart(t *testing.T) {
	t.Parallel()

	store := &failingStore{MemoryStore: NewMemoryStore(), loadErr: errors.New("redis down")}
	svc := newTestService(t, store)

	crt, err := svc.Get(context.Background(), "tok")
	if err != nil {
		t.Fatalf("get should not surface load failures: %v", err)
	}
	if crt.Len() != 0 {
		t.Fatalf("expected empty cart, got %d items", crt.Len())
	}
}

func TestService_SaveFailureSurfacesDependencyError(t *testing.T) {
	t.Parallel()

	store := &failingStore{MemoryStore: NewMemoryStore(), saveErr: errors.New("redis down")}
	svc := newTestService(t, store)

	_, _, err := svc.AddItem(context.Background(), "tok", LineItemInput{Name: "VPS", Code: "vps"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestService_SelectedServiceSlot(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	ctx := context.Background()

	_, err := svc.GetSelected(ctx, "tok")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found before selection, got %v", err)
	}

	sel := types.ServiceSelection{PlanCode: "vps-eco-1", Name: "VPS Eco 1", Kind: "server", MonthlyPrice: 599000}
	if err := svc.SelectService(ctx, "tok", sel); err != nil {
		t.Fatalf("select: %v", err)
	}

	got, err := svc.GetSelected(ctx, "tok")
	if err != nil {
		t.Fatalf("get selected: %v", err)
	}
	if got.PlanCode != "vps-eco-1" || got.MonthlyPrice != 599000 {
		t.Fatalf("unexpected selection: %+v", got)
	}
}

func TestService_EditFlowMovesItemToEditingSlot(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	ctx := context.Background()

	if _, _, err := svc.AddItem(ctx, "tok", LineItemInput{Name: "VPS", Code: "vps", UnitPrice: 100000, Duration: 6}); err != nil {
		t.Fatalf("add: %v", err)
	}

	stashed, err := svc.StashEditing(ctx, "tok", "vps")
	if err != nil {
		t.Fatalf("stash: %v", err)
	}
	if stashed.Code != "vps" {
		t.Fatalf("unexpected stashed item: %+v", stashed)
	}

	crt, err := svc.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if crt.Find("vps") != nil {
		t.Fatal("stashed item should leave the cart")
	}

	taken, err := svc.TakeEditing(ctx, "tok")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if taken.Code != "vps" || taken.Duration != 6 {
		t.Fatalf("unexpected editing item: %+v", taken)
	}

	_, err = svc.TakeEditing(ctx, "tok")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found after take, got %v", err)
	}
}

func TestService_StashEditingUnknownCode(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	_, err := svc.StashEditing(context.Background(), "tok", "missing")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestService_Clear(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryStore())
	ctx := context.Background()

	if _, _, err := svc.AddItem(ctx, "tok", LineItemInput{Name: "VPS", Code: "vps"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(ctx, "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	crt, err := svc.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if crt.Len() != 0 {
		t.Fatalf("cart not cleared: %d items", crt.Len())
	}
}
