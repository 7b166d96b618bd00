package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nettoria/storefront-backend/pkg/db/models"
	"github.com/nettoria/storefront-backend/pkg/enums"
	pkgerrors "github.com/nettoria/storefront-backend/pkg/errors"
	"github.com/nettoria/storefront-backend/pkg/pagination"
)

type planLoader interface {
	List(ctx context.Context, kind *enums.ServiceKind, params pagination.Params) ([]models.ServicePlan, int64, error)
	GetByCode(ctx context.Context, code string) (*models.ServicePlan, error)
}

// Service exposes catalog reads to the API layer.
type Service interface {
	List(ctx context.Context, rawKind string, params pagination.Params) (*PlanList, error)
	GetByCode(ctx context.Context, code string) (*ServicePlanDTO, error)
}

type service struct {
	repo planLoader
}

// NewService builds a catalog service backed by the provided repository.
func NewService(repo planLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// List returns a page of active plans. An empty kind lists everything; an
// unknown kind is a validation error rather than an empty result.
func (s *service) List(ctx context.Context, rawKind string, params pagination.Params) (*PlanList, error) {
	params = params.Normalize()

	var kind *enums.ServiceKind
	if trimmed := strings.TrimSpace(rawKind); trimmed != "" {
		parsed, err := enums.ParseServiceKind(trimmed)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown service kind")
		}
		kind = &parsed
	}

	rows, total, err := s.repo.List(ctx, kind, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list service plans")
	}

	plans := make([]ServicePlanDTO, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, toDTO(row))
	}
	return &PlanList{
		Plans:   plans,
		Page:    params.Page,
		PerPage: params.PerPage,
		Total:   total,
	}, nil
}

// GetByCode loads one active plan.
func (s *service) GetByCode(ctx context.Context, code string) (*ServicePlanDTO, error) {
	if strings.TrimSpace(code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plan code is required")
	}

	plan, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "service plan not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load service plan")
	}

	dto := toDTO(*plan)
	return &dto, nil
}
