package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nettoria/storefront-backend/pkg/logger"
	"github.com/nettoria/storefront-backend/pkg/redis"
	"github.com/nettoria/storefront-backend/pkg/types"
)

// RedisStore persists cart state in the session key-value namespace. Keys
// are TTL-bounded so abandoned carts age out on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logg   *logger.Logger
}

// NewRedisStore builds a Store backed by the shared redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration, logg *logger.Logger) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisStore{client: client, ttl: ttl, logg: logg}, nil
}

// Load reads the cart document. A missing key is an empty cart; a corrupted
// payload is logged and also treated as an empty cart, never surfaced.
func (s *RedisStore) Load(ctx context.Context, token string) (*Cart, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return New(), nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	crt, err := decodeItems([]byte(raw))
	if err != nil {
		if s.logg != nil {
			ctx = s.logg.WithCartToken(ctx, token)
			s.logg.Warn(ctx, "stored cart is malformed, resetting to empty")
		}
		return New(), nil
	}
	return crt, nil
}

// Save writes the cart document verbatim as a JSON array.
func (s *RedisStore) Save(ctx context.Context, token string, crt *Cart) error {
	payload, err := encodeItems(crt)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(token), payload, s.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear removes every storage slot owned by the session.
func (s *RedisStore) Clear(ctx context.Context, token string) error {
	return s.client.Del(ctx,
		s.client.CartKey(token),
		s.client.SelectedServiceKey(token),
		s.client.EditingServiceKey(token),
	)
}

// PutSelected stores the catalog selection for the configuration page.
func (s *RedisStore) PutSelected(ctx context.Context, token string, sel types.ServiceSelection) error {
	payload, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	return s.client.Set(ctx, s.client.SelectedServiceKey(token), payload, s.ttl)
}

// GetSelected returns the stored selection, or nil when the slot is empty or
// unreadable.
func (s *RedisStore) GetSelected(ctx context.Context, token string) (*types.ServiceSelection, error) {
	raw, err := s.client.Get(ctx, s.client.SelectedServiceKey(token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load selection: %w", err)
	}
	var sel types.ServiceSelection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithCartToken(ctx, token), "stored selection is malformed, dropping")
		}
		return nil, nil
	}
	return &sel, nil
}

// PutEditing stashes an item being edited.
func (s *RedisStore) PutEditing(ctx context.Context, token string, item LineItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode editing item: %w", err)
	}
	return s.client.Set(ctx, s.client.EditingServiceKey(token), payload, s.ttl)
}

// TakeEditing reads and clears the editing slot. Returns nil when empty.
func (s *RedisStore) TakeEditing(ctx context.Context, token string) (*LineItem, error) {
	key := s.client.EditingServiceKey(token)
	raw, err := s.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load editing item: %w", err)
	}
	if err := s.client.Del(ctx, key); err != nil {
		return nil, fmt.Errorf("clear editing item: %w", err)
	}
	var item LineItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithCartToken(ctx, token), "stored editing item is malformed, dropping")
		}
		return nil, nil
	}
	item.normalize()
	return &item, nil
}
