package migrate

import (
	"context"
	"fmt"

	"github.com/nettoria/storefront-backend/pkg/config"
	"github.com/nettoria/storefront-backend/pkg/db"
	"github.com/nettoria/storefront-backend/pkg/db/models"
	"github.com/nettoria/storefront-backend/pkg/logger"
)

// MaybeRunDev brings the schema up automatically when the app runs in dev
// mode with the feature flag enabled. Postgres goes through goose; sqlite
// databases rely on GORM AutoMigrate since the SQL files are Postgres-typed.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "driver": cfg.DB.Driver})

	if cfg.FeatureFlags.UseSQLite || cfg.DB.Driver == "sqlite" {
		logg.Info(ctx, "running GORM auto-migration (sqlite dev)")
		if err := client.DB().WithContext(ctx).AutoMigrate(&models.ServicePlan{}, &models.Order{}); err != nil {
			return fmt.Errorf("auto-migrating sqlite schema: %w", err)
		}
	} else {
		sqlDB, err := client.DB().DB()
		if err != nil {
			return fmt.Errorf("extracting sql.DB: %w", err)
		}
		logg.Info(ctx, "running goose migrations (dev auto-run)")
		if err := Run(ctx, sqlDB, "up"); err != nil {
			return fmt.Errorf("running goose up: %w", err)
		}
	}

	if cfg.FeatureFlags.SeedCatalog {
		if err := SeedCatalog(ctx, client, logg); err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}
	}

	logg.Info(ctx, "dev migrations completed")
	return nil
}
