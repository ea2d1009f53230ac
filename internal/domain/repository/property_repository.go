package repository

import (
	"context"

	"roost/internal/domain/entity"
	"roost/internal/domain/search"
	"roost/internal/errors"
)

// ErrPropertyNotFound is returned when a lookup by id matches no row.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository defines persistence operations for listings.
type PropertyRepository interface {
	// Search executes a compiled predicate as a single read query and
	// returns matching properties, each carrying its denormalized
	// location with decoded coordinates.
	Search(ctx context.Context, predicate *search.CompiledPredicate) ([]*entity.Property, error)

	// FindByID returns the property with its location, or
	// ErrPropertyNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*entity.Property, error)

	// CreateProperty inserts a property row referencing an already
	// persisted location. property.Location.ID must be set.
	CreateProperty(ctx context.Context, property *entity.Property) error

	// CountProperties returns the total number of property rows.
	CountProperties(ctx context.Context) (int64, error)
}

// LocationRepository defines persistence operations for locations.
type LocationRepository interface {
	// CreateLocation inserts a location row and fills in the generated id
	// and decoded coordinates.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// CountLocations returns the total number of location rows.
	CountLocations(ctx context.Context) (int64, error)
}

// LeaseRepository defines read operations for leases.
type LeaseRepository interface {
	// FindByProperty returns the leases for a property with embedded
	// tenant data. No leases is an empty slice, not an error.
	FindByProperty(ctx context.Context, propertyID int64) ([]*entity.Lease, error)
}
