package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nettoria/storefront-backend/pkg/types"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	crt := New()
	crt.AddItem(NewLineItem(LineItemInput{
		Name:      "VPS Eco 1",
		Code:      "vps-eco-1",
		UnitPrice: 599000,
		Duration:  12,
		Extras:    types.Extras{"datacenter": "tehran"},
	}))

	if err := store.Save(ctx, "tok", crt); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("expected one item, got %d", loaded.Len())
	}
	item := loaded.Find("vps-eco-1")
	if item == nil {
		t.Fatal("item missing after round trip")
	}
	if item.UnitPrice != 599000 || item.Duration != 12 {
		t.Fatalf("item mangled: %+v", item)
	}
	if item.Extras["datacenter"] != "tehran" {
		t.Fatalf("extras mangled: %v", item.Extras)
	}
}

func TestStore_WireFormatIsBareArray(t *testing.T) {
	t.Parallel()

	crt := New()
	crt.AddItem(NewLineItem(LineItemInput{Name: "VPS", Code: "vps", UnitPrice: 100, Duration: 1}))

	payload, err := encodeItems(crt)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var array []map[string]any
	if err := json.Unmarshal(payload, &array); err != nil {
		t.Fatalf("payload is not a bare array: %s", payload)
	}
	if len(array) != 1 {
		t.Fatalf("expected one element, got %d", len(array))
	}
	for _, key := range []string{"name", "code", "quantity", "price", "type", "duration"} {
		if _, ok := array[0][key]; !ok {
			t.Fatalf("wire field %q missing in %v", key, array[0])
		}
	}
}

func TestStore_LoadMissingTokenReturnsEmptyCart(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	crt, err := store.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if crt.Len() != 0 {
		t.Fatalf("expected empty cart, got %d items", crt.Len())
	}
}

func TestStore_CorruptPayloadDegradesToEmptyCart(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	store.SeedRaw("tok", []byte(`{"not":"an array`))

	crt, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if crt.Len() != 0 {
		t.Fatalf("corrupt payload should yield empty cart, got %d items", crt.Len())
	}
}

func TestDecodeItems_RenormalizesStoredItems(t *testing.T) {
	t.Parallel()

	raw := []byte(`[{"name":"VPS","code":"","quantity":0,"price":-5,"type":"server","duration":0}]`)
	crt, err := decodeItems(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if crt.Len() != 1 {
		t.Fatalf("expected one item, got %d", crt.Len())
	}
	item := crt.Items[0]
	if item.Quantity != 1 || item.Duration != 1 || item.UnitPrice != 0 {
		t.Fatalf("stored item not renormalized: %+v", item)
	}
	if item.Code == "" {
		t.Fatal("blank stored code should be regenerated")
	}
}

func TestStore_ClearDropsAllSlots(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	crt := New()
	crt.AddItem(NewLineItem(LineItemInput{Name: "A", Code: "a"}))
	if err := store.Save(ctx, "tok", crt); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.PutSelected(ctx, "tok", types.ServiceSelection{PlanCode: "vps-eco-1"}); err != nil {
		t.Fatalf("put selected: %v", err)
	}
	if err := store.PutEditing(ctx, "tok", crt.Items[0]); err != nil {
		t.Fatalf("put editing: %v", err)
	}

	if err := store.Clear(ctx, "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	loaded, _ := store.Load(ctx, "tok")
	if loaded.Len() != 0 {
		t.Fatal("cart survived clear")
	}
	if sel, _ := store.GetSelected(ctx, "tok"); sel != nil {
		t.Fatal("selection survived clear")
	}
	if item, _ := store.TakeEditing(ctx, "tok"); item != nil {
		t.Fatal("editing slot survived clear")
	}
}

func TestStore_TakeEditingIsDestructive(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	item := NewLineItem(LineItemInput{Name: "VPS", Code: "vps"})
	if err := store.PutEditing(ctx, "tok", item); err != nil {
		t.Fatalf("put editing: %v", err)
	}

	first, err := store.TakeEditing(ctx, "tok")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if first == nil || first.Code != "vps" {
		t.Fatalf("unexpected item: %+v", first)
	}

	second, err := store.TakeEditing(ctx, "tok")
	if err != nil {
		t.Fatalf("second take: %v", err)
	}
	if second != nil {
		t.Fatal("editing slot should be empty after take")
	}
}
