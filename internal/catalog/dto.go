package catalog

import (
	"github.com/google/uuid"

	"github.com/nettoria/storefront-backend/pkg/db/models"
	"github.com/nettoria/storefront-backend/pkg/enums"
	"github.com/nettoria/storefront-backend/pkg/types"
)

// ServicePlanDTO is the catalog entry shape returned to storefront pages.
type ServicePlanDTO struct {
	ID           uuid.UUID         `json:"id"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	Kind         enums.ServiceKind `json:"kind"`
	MonthlyPrice int64             `json:"monthly_price"`
	Extras       types.Extras      `json:"extras,omitempty"`
}

// PlanList is a paginated catalog listing.
type PlanList struct {
	Plans   []ServicePlanDTO `json:"plans"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
	Total   int64            `json:"total"`
}

func toDTO(plan models.ServicePlan) ServicePlanDTO {
	return ServicePlanDTO{
		ID:           plan.ID,
		Code:         plan.Code,
		Name:         plan.Name,
		Kind:         plan.Kind,
		MonthlyPrice: plan.MonthlyPrice,
		Extras:       plan.Extras,
	}
}

// SelectionFromPlan converts a catalog entry into the payload stored in the
// session's selected-service slot.
func SelectionFromPlan(plan ServicePlanDTO) types.ServiceSelection {
	return types.ServiceSelection{
		PlanCode:     plan.Code,
		Name:         plan.Name,
		Kind:         plan.Kind.String(),
		MonthlyPrice: plan.MonthlyPrice,
		Extras:       plan.Extras.Clone(),
	}
}
