package postgres

import (
	"context"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation inserts a location row. Callers run this inside the
// ingestion transaction so the row never commits without its property.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := &model.LocationModel{
		Address:     location.Address,
		City:        location.City,
		State:       location.State,
		Country:     location.Country,
		PostalCode:  location.PostalCode,
		Coordinates: model.GeoPoint(location.Point),
	}

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrStorageFailure.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID

	return nil
}

// CountLocations returns the total number of location rows.
func (repo *locationRepository) CountLocations(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.LocationModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count locations")
	}

	return count, nil
}
