package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/nettoria/storefront-backend/pkg/db/models"
	"github.com/nettoria/storefront-backend/pkg/enums"
	"github.com/nettoria/storefront-backend/pkg/pagination"
)

// Repository exposes read access to the service-plan catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns active plans, optionally filtered by kind, in display order.
func (r *Repository) List(ctx context.Context, kind *enums.ServiceKind, params pagination.Params) ([]models.ServicePlan, int64, error) {
	params = params.Normalize()

	query := r.db.WithContext(ctx).Model(&models.ServicePlan{}).Where("is_active = ?", true)
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ServicePlan
	if err := query.
		Order("sort_order ASC, code ASC").
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByCode loads one active plan by its catalog code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*models.ServicePlan, error) {
	var plan models.ServicePlan
	if err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}
