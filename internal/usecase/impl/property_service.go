// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/search"
	"roost/internal/domain/service"
	"roost/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	txManager    repository.TransactionManager
	propertyRepo repository.PropertyRepository
	leaseRepo    repository.LeaseRepository
	geocoder     service.Geocoder
	mediaStorage service.MediaStorage
	compiler     *search.Compiler
	logger       *slog.Logger
	now          func() time.Time
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(
	txManager repository.TransactionManager,
	propertyRepo repository.PropertyRepository,
	leaseRepo repository.LeaseRepository,
	geocoder service.Geocoder,
	mediaStorage service.MediaStorage,
	compiler *search.Compiler,
	logger *slog.Logger,
) usecase.PropertyUsecase {
	return &propertyService{
		txManager:    txManager,
		propertyRepo: propertyRepo,
		leaseRepo:    leaseRepo,
		geocoder:     geocoder,
		mediaStorage: mediaStorage,
		compiler:     compiler,
		logger:       logger,
		now:          time.Now,
	}
}

// Search compiles the criteria into one predicate and runs it as a single
// read query.
func (srv *propertyService) Search(ctx context.Context, criteria *search.Criteria) ([]*entity.Property, error) {
	predicate, err := srv.compiler.Compile(criteria)
	if err != nil {
		return nil, err
	}

	properties, err := srv.propertyRepo.Search(ctx, predicate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search properties")
	}

	return properties, nil
}

// GetByID returns one listing with its location.
func (srv *propertyService) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPropertyNotFound, fmt.Sprintf("property %d", id))
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}

// LeasesForProperty returns the lease history of a listing.
func (srv *propertyService) LeasesForProperty(ctx context.Context, propertyID int64) ([]*entity.Lease, error) {
	leases, err := srv.leaseRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find leases")
	}

	return leases, nil
}

// Create ingests one listing submission. Photo uploads and address geocoding
// run concurrently; a failed upload aborts the ingestion, while exhausted
// geocoding falls back to sentinel coordinates so the listing is never lost.
// The location and property rows commit in one transaction.
func (srv *propertyService) Create(ctx context.Context, input *usecase.CreatePropertyInput) (*usecase.CreatePropertyResult, error) {
	property, err := srv.buildProperty(input)
	if err != nil {
		return nil, err
	}

	var (
		photoURLs []string
		geocoded  entity.GeocodeResult
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		urls, err := srv.mediaStorage.Upload(groupCtx, input.Photos)
		if err != nil {
			return err
		}
		photoURLs = urls

		return nil
	})
	group.Go(func() error {
		geocoded = srv.geocoder.Resolve(groupCtx, entity.PostalAddress{
			Street:     input.Address,
			City:       input.City,
			State:      input.State,
			Country:    input.Country,
			PostalCode: input.PostalCode,
		})

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if geocoded.Failed {
		srv.logger.Warn("storing listing with sentinel coordinates",
			slog.String("name", property.Name),
			slog.String("city", input.City))
	}

	property.PhotoURLs = photoURLs
	location := &entity.Location{
		Address:    input.Address,
		City:       input.City,
		State:      input.State,
		Country:    input.Country,
		PostalCode: input.PostalCode,
		Point:      geocoded.Point,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLocationRepository().CreateLocation(ctx, location); err != nil {
			return errors.Wrap(err, "failed to create location")
		}

		property.Location = location
		if err := repoFactory.NewPropertyRepository().CreateProperty(ctx, property); err != nil {
			return errors.Wrap(err, "failed to create property")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist listing")
	}

	srv.logger.Info("listing created",
		slog.Int64("propertyId", property.ID),
		slog.String("provider", geocoded.Provider),
		slog.Int("photos", len(photoURLs)))

	return &usecase.CreatePropertyResult{
		Property:          property,
		GeocodingDegraded: geocoded.Failed,
	}, nil
}

// buildProperty coerces the raw form fields into a domain entity. Every
// coercion failure surfaces as ErrInvalidPropertyData naming the field.
func (srv *propertyService) buildProperty(input *usecase.CreatePropertyInput) (*entity.Property, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, invalidField("name", "must not be empty")
	}
	if strings.TrimSpace(input.ManagerID) == "" {
		return nil, invalidField("managerId", "must not be empty")
	}

	propertyType, err := entity.ParsePropertyType(input.PropertyType)
	if err != nil {
		return nil, invalidField("propertyType", err.Error())
	}

	price, err := parseNonNegativeFloat("pricePerMonth", input.PricePerMonth)
	if err != nil {
		return nil, err
	}
	deposit, err := parseNonNegativeFloat("securityDeposit", input.SecurityDeposit)
	if err != nil {
		return nil, err
	}
	fee, err := parseNonNegativeFloat("applicationFee", input.ApplicationFee)
	if err != nil {
		return nil, err
	}
	beds, err := parseNonNegativeInt("beds", input.Beds)
	if err != nil {
		return nil, err
	}
	baths, err := parseNonNegativeFloat("baths", input.Baths)
	if err != nil {
		return nil, err
	}
	squareFeet, err := parseNonNegativeInt("squareFeet", input.SquareFeet)
	if err != nil {
		return nil, err
	}
	pets, err := parseOptionalBool("isPetsAllowed", input.IsPetsAllowed)
	if err != nil {
		return nil, err
	}
	parking, err := parseOptionalBool("isParkingIncluded", input.IsParkingIncluded)
	if err != nil {
		return nil, err
	}

	return &entity.Property{
		Name:              input.Name,
		Description:       input.Description,
		PricePerMonth:     price,
		SecurityDeposit:   deposit,
		ApplicationFee:    fee,
		Beds:              beds,
		Baths:             baths,
		SquareFeet:        squareFeet,
		PropertyType:      propertyType,
		IsPetsAllowed:     pets,
		IsParkingIncluded: parking,
		Amenities:         normalizeStringSet(input.Amenities),
		Highlights:        normalizeStringSet(input.Highlights),
		PhotoURLs:         []string{},
		ManagerID:         input.ManagerID,
		PostedDate:        srv.now(),
	}, nil
}

func invalidField(field, reason string) error {
	return domainerrors.ErrInvalidPropertyData.WrapMessage(fmt.Sprintf("%s: %s", field, reason))
}

func parseNonNegativeFloat(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, invalidField(field, "must be a number")
	}
	if value < 0 {
		return 0, invalidField(field, "must not be negative")
	}

	return value, nil
}

func parseNonNegativeInt(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalidField(field, "must be an integer")
	}
	if value < 0 {
		return 0, invalidField(field, "must not be negative")
	}

	return value, nil
}

// parseOptionalBool treats an absent field as false.
func parseOptionalBool(field, raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, invalidField(field, "must be true or false")
	}

	return value, nil
}

// normalizeStringSet flattens either repeated form values or one delimited
// string into a de-duplicated list that preserves first-seen order.
func normalizeStringSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}

	return out
}
