package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/nettoria/storefront-backend/pkg/enums"
	"github.com/nettoria/storefront-backend/pkg/types"
)

// OrderItem is the frozen form of a cart line item at checkout time. The JSON
// layout matches the cart wire format exactly.
type OrderItem struct {
	Name      string       `json:"name"`
	Code      string       `json:"code"`
	Quantity  int          `json:"quantity"`
	UnitPrice int64        `json:"price"`
	Kind      string       `json:"type"`
	Duration  int          `json:"duration"`
	Extras    types.Extras `json:"extras,omitempty"`
}

// Order archives a checked-out cart with the summary that was shown to the
// customer. Amounts are in the smallest currency unit.
type Order struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	CartToken string            `gorm:"column:cart_token;not null;index"`
	Items     []OrderItem       `gorm:"column:items;type:jsonb;serializer:json"`
	Original  int64             `gorm:"column:original;not null"`
	Subtotal  int64             `gorm:"column:subtotal;not null"`
	Saved     int64             `gorm:"column:saved;not null"`
	Tax       int64             `gorm:"column:tax;not null"`
	Total     int64             `gorm:"column:total;not null"`
	Status    enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
