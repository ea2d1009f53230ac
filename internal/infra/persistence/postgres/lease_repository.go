package postgres

import (
	"context"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// leaseRepository implements the domain.LeaseRepository interface.
type leaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository is the constructor for leaseRepository.
func NewLeaseRepository(db *gorm.DB) repository.LeaseRepository {
	return &leaseRepository{db: db}
}

// FindByProperty returns leases with embedded tenant data, newest first.
// A property without leases yields an empty slice.
func (repo *leaseRepository) FindByProperty(ctx context.Context, propertyID int64) ([]*entity.Lease, error) {
	var leaseModels []*model.LeaseModel
	if err := repo.db.WithContext(ctx).
		Preload("Tenant").
		Where("property_id = ?", propertyID).
		Order("start_date DESC").
		Find(&leaseModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find leases by property")
	}

	leases := make([]*entity.Lease, 0, len(leaseModels))
	for _, leaseM := range leaseModels {
		leases = append(leases, toLeaseDomain(leaseM))
	}

	return leases, nil
}

// --- Mapper Functions ---

func toLeaseDomain(data *model.LeaseModel) *entity.Lease {
	if data == nil {
		return nil
	}

	lease := &entity.Lease{
		ID:         data.ID,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
		Rent:       data.Rent,
		Deposit:    data.Deposit,
		PropertyID: data.PropertyID,
		TenantID:   data.TenantID,
	}

	if data.Tenant != nil {
		lease.Tenant = &entity.Tenant{
			ID:          data.Tenant.ID,
			ExternalID:  data.Tenant.ExternalID,
			Name:        data.Tenant.Name,
			Email:       data.Tenant.Email,
			PhoneNumber: data.Tenant.PhoneNumber,
		}
	}

	return lease
}
