package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nettoria/storefront-backend/pkg/types"
)

// MemoryStore is an in-process Store used by tests and local development. It
// round-trips through the same JSON wire format as the redis store so codec
// behavior is exercised either way.
type MemoryStore struct {
	mu       sync.Mutex
	carts    map[string][]byte
	selected map[string][]byte
	editing  map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:    map[string][]byte{},
		selected: map[string][]byte{},
		editing:  map[string][]byte{},
	}
}

func (s *MemoryStore) Load(_ context.Context, token string) (*Cart, error) {
	s.mu.Lock()
	raw, ok := s.carts[token]
	s.mu.Unlock()
	if !ok {
		return New(), nil
	}
	crt, err := decodeItems(raw)
	if err != nil {
		return New(), nil
	}
	return crt, nil
}

func (s *MemoryStore) Save(_ context.Context, token string, crt *Cart) error {
	payload, err := encodeItems(crt)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[token] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.carts, token)
	delete(s.selected, token)
	delete(s.editing, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) PutSelected(_ context.Context, token string, sel types.ServiceSelection) error {
	payload, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.selected[token] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetSelected(_ context.Context, token string) (*types.ServiceSelection, error) {
	s.mu.Lock()
	raw, ok := s.selected[token]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	var sel types.ServiceSelection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return nil, nil
	}
	return &sel, nil
}

func (s *MemoryStore) PutEditing(_ context.Context, token string, item LineItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.editing[token] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) TakeEditing(_ context.Context, token string) (*LineItem, error) {
	s.mu.Lock()
	raw, ok := s.editing[token]
	delete(s.editing, token)
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	var item LineItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, nil
	}
	item.normalize()
	return &item, nil
}

// SeedRaw plants a raw cart payload; tests use it to simulate corruption.
func (s *MemoryStore) SeedRaw(token string, raw []byte) {
	s.mu.Lock()
	s.carts[token] = raw
	s.mu.Unlock()
}
