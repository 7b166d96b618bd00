package migrate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nettoria/storefront-backend/pkg/db"
	"github.com/nettoria/storefront-backend/pkg/db/models"
	"github.com/nettoria/storefront-backend/pkg/enums"
	"github.com/nettoria/storefront-backend/pkg/logger"
	"github.com/nettoria/storefront-backend/pkg/types"
)

var seedPlans = []models.ServicePlan{
	{
		Code:         "vps-eco-1",
		Name:         "VPS Economy 1",
		Kind:         enums.ServiceKindServer,
		MonthlyPrice: 599000,
		Extras:       types.Extras{"cpu": 1, "ram_gb": 2, "disk_gb": 25, "datacenter": "iran-1"},
		SortOrder:    1,
	},
	{
		Code:         "vps-eco-2",
		Name:         "VPS Economy 2",
		Kind:         enums.ServiceKindServer,
		MonthlyPrice: 899000,
		Extras:       types.Extras{"cpu": 2, "ram_gb": 4, "disk_gb": 50, "datacenter": "iran-1"},
		SortOrder:    2,
	},
	{
		Code:         "cloud-std-1",
		Name:         "Cloud Server Standard 1",
		Kind:         enums.ServiceKindCloudServer,
		MonthlyPrice: 1490000,
		Extras:       types.Extras{"cpu": 4, "ram_gb": 8, "disk_gb": 100, "datacenter": "europe-1"},
		SortOrder:    3,
	},
	{
		Code:         "host-linux-1",
		Name:         "Linux Host Basic",
		Kind:         enums.ServiceKindHost,
		MonthlyPrice: 190000,
		Extras:       types.Extras{"disk_gb": 5, "os": "linux"},
		SortOrder:    4,
	},
	{
		Code:         "vpn-personal",
		Name:         "Personal VPN",
		Kind:         enums.ServiceKindVPN,
		MonthlyPrice: 120000,
		Extras:       types.Extras{"devices": 3},
		SortOrder:    5,
	},
}

// SeedCatalog inserts the default plan set when the catalog table is empty.
func SeedCatalog(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	conn := client.DB().WithContext(ctx)

	var count int64
	if err := conn.Model(&models.ServicePlan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting service plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	plans := make([]models.ServicePlan, len(seedPlans))
	copy(plans, seedPlans)
	for i := range plans {
		plans[i].ID = uuid.New()
		plans[i].IsActive = true
	}

	if err := conn.Create(&plans).Error; err != nil {
		return fmt.Errorf("inserting seed plans: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "plans", len(plans)), "catalog seeded")
	}
	return nil
}
