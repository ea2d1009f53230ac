package postgres

import (
	"context"

	"roost/internal/errors"
	"roost/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate bootstraps the schema: PostGIS first, then the tables, then the
// spatial index the proximity filter depends on.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return errors.Wrap(err, "failed to create postgis extension")
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&model.LocationModel{},
		&model.PropertyModel{},
		&model.TenantModel{},
		&model.LeaseModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	if err := db.WithContext(ctx).
		Exec("CREATE INDEX IF NOT EXISTS idx_locations_coordinates ON locations USING GIST (coordinates)").Error; err != nil {
		return errors.Wrap(err, "failed to create spatial index")
	}

	return nil
}
