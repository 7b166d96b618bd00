package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/nettoria/storefront-backend/pkg/enums"
	"github.com/nettoria/storefront-backend/pkg/types"
)

// ServicePlan is one purchasable catalog entry: a VPS size, a hosting plan,
// a VPN package. MonthlyPrice is in the smallest currency unit.
type ServicePlan struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Code         string            `gorm:"column:code;not null;uniqueIndex"`
	Name         string            `gorm:"column:name;not null"`
	Kind         enums.ServiceKind `gorm:"column:kind;not null;index"`
	MonthlyPrice int64             `gorm:"column:monthly_price;not null"`
	Extras       types.Extras      `gorm:"column:extras;type:jsonb;serializer:json"`
	IsActive     bool              `gorm:"column:is_active;not null;default:true"`
	SortOrder    int               `gorm:"column:sort_order;not null;default:0"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
