// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"roost/internal/domain/entity"
	"roost/internal/domain/search"
	"roost/internal/domain/service"
)

// PropertyUsecase defines the interface for listing-related business operations.
type PropertyUsecase interface {
	// Search compiles the given criteria and returns matching listings,
	// newest first.
	Search(ctx context.Context, criteria *search.Criteria) ([]*entity.Property, error)

	// GetByID returns one listing with its location.
	GetByID(ctx context.Context, id int64) (*entity.Property, error)

	// Create ingests a new listing: photos are uploaded and the address
	// geocoded concurrently, then the location and property rows are
	// written in one transaction.
	Create(ctx context.Context, input *CreatePropertyInput) (*CreatePropertyResult, error)

	// LeasesForProperty returns the lease history of a listing, newest
	// first, with embedded tenant data.
	LeasesForProperty(ctx context.Context, propertyID int64) ([]*entity.Lease, error)
}

// --- Input DTOs ---

// CreatePropertyInput carries the raw multipart form fields of a listing
// submission. Numeric and boolean fields arrive as strings and are coerced
// during ingestion; set-valued fields accept either repeated values or one
// delimited string.
type CreatePropertyInput struct {
	Name        string
	Description string

	PricePerMonth   string
	SecurityDeposit string
	ApplicationFee  string
	Beds            string
	Baths           string
	SquareFeet      string

	PropertyType      string
	IsPetsAllowed     string
	IsParkingIncluded string

	Amenities  []string
	Highlights []string

	Address    string
	City       string
	State      string
	Country    string
	PostalCode string

	ManagerID string

	Photos []service.MediaAsset
}

// CreatePropertyResult is the outcome of one ingestion.
type CreatePropertyResult struct {
	Property *entity.Property

	// GeocodingDegraded reports that every geocoding provider failed and
	// the listing was stored with sentinel coordinates.
	GeocodingDegraded bool
}
