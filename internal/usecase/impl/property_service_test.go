package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/search"
	"roost/internal/domain/service"
	mockRepo "roost/internal/mocks/repository"
	mockService "roost/internal/mocks/service"
	"roost/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// propertyServiceFixtures holds all test dependencies for property service tests.
type propertyServiceFixtures struct {
	service      usecase.PropertyUsecase
	txManager    *mockRepo.MockTransactionManager
	propertyRepo *mockRepo.MockPropertyRepository
	leaseRepo    *mockRepo.MockLeaseRepository
	geocoder     *mockService.MockGeocoder
	mediaStorage *mockService.MockMediaStorage
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	leaseRepo := mockRepo.NewMockLeaseRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	mediaStorage := mockService.NewMockMediaStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPropertyService(
		txManager,
		propertyRepo,
		leaseRepo,
		geocoder,
		mediaStorage,
		search.NewCompiler(50000),
		logger,
	)

	return propertyServiceFixtures{
		service:      service,
		txManager:    txManager,
		propertyRepo: propertyRepo,
		leaseRepo:    leaseRepo,
		geocoder:     geocoder,
		mediaStorage: mediaStorage,
	}
}

func validCreateInput() *usecase.CreatePropertyInput {
	return &usecase.CreatePropertyInput{
		Name:            "Sunny Loft",
		Description:     "Bright two-bedroom loft",
		PricePerMonth:   "2500",
		SecurityDeposit: "2500",
		ApplicationFee:  "50",
		Beds:            "2",
		Baths:           "1.5",
		SquareFeet:      "900",
		PropertyType:    "Apartment",
		IsPetsAllowed:   "true",
		Amenities:       []string{"WasherDryer,AirConditioning"},
		Highlights:      []string{"GreatView"},
		Address:         "1 Market St",
		City:            "San Francisco",
		State:           "CA",
		Country:         "USA",
		PostalCode:      "94105",
		ManagerID:       "mgr-42",
		Photos: []service.MediaAsset{
			{FileName: "front.jpg", ContentType: "image/jpeg", Body: []byte("a")},
			{FileName: "kitchen.jpg", ContentType: "image/jpeg", Body: []byte("b")},
		},
	}
}

func expectTransaction(t *testing.T, fx propertyServiceFixtures, locationID, propertyID int64) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)
			mockPropertyRepo := mockRepo.NewMockPropertyRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(mockLocationRepo)
			mockFactory.EXPECT().NewPropertyRepository().Return(mockPropertyRepo)
			mockLocationRepo.EXPECT().
				CreateLocation(mock.Anything, mock.AnythingOfType("*entity.Location")).
				Run(func(ctx context.Context, location *entity.Location) {
					location.ID = locationID
				}).
				Return(nil)
			mockPropertyRepo.EXPECT().
				CreateProperty(mock.Anything, mock.AnythingOfType("*entity.Property")).
				Run(func(ctx context.Context, property *entity.Property) {
					property.ID = propertyID
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)
}

func TestPropertyService_Create_Success(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	input := validCreateInput()

	fx.mediaStorage.EXPECT().
		Upload(mock.Anything, input.Photos).
		Return([]string{"https://cdn.example.com/properties/1-front.jpg", "https://cdn.example.com/properties/2-kitchen.jpg"}, nil)
	fx.geocoder.EXPECT().
		Resolve(mock.Anything, entity.PostalAddress{
			Street:     "1 Market St",
			City:       "San Francisco",
			State:      "CA",
			Country:    "USA",
			PostalCode: "94105",
		}).
		Return(entity.GeocodeResult{Point: orb.Point{-122.39, 37.79}, Provider: "google"})
	expectTransaction(t, fx, 7, 11)

	result, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.False(t, result.GeocodingDegraded)
	assert.Equal(t, int64(11), result.Property.ID)
	assert.Equal(t, "Sunny Loft", result.Property.Name)
	assert.Equal(t, 2500.0, result.Property.PricePerMonth)
	assert.Equal(t, entity.PropertyTypeApartment, result.Property.PropertyType)
	assert.True(t, result.Property.IsPetsAllowed)
	assert.False(t, result.Property.IsParkingIncluded)
	assert.Equal(t, []string{
		"https://cdn.example.com/properties/1-front.jpg",
		"https://cdn.example.com/properties/2-kitchen.jpg",
	}, result.Property.PhotoURLs)
	require.NotNil(t, result.Property.Location)
	assert.Equal(t, int64(7), result.Property.Location.ID)
	assert.Equal(t, orb.Point{-122.39, 37.79}, result.Property.Location.Point)
}

func TestPropertyService_Create_MediaFailureAbortsIngestion(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	input := validCreateInput()

	fx.mediaStorage.EXPECT().
		Upload(mock.Anything, input.Photos).
		Return(nil, domainerrors.ErrMediaUploadFailed.WrapMessage("upload front.jpg"))
	fx.geocoder.EXPECT().
		Resolve(mock.Anything, mock.AnythingOfType("entity.PostalAddress")).
		Return(entity.GeocodeResult{Point: orb.Point{-122.39, 37.79}, Provider: "google"}).
		Maybe()

	result, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, result)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MEDIA_UPLOAD_FAILED", appErr.ErrorCode())
	// no transaction expectation: nothing may be persisted
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPropertyService_Create_GeocodingDegradedStillPersists(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	input := validCreateInput()

	fx.mediaStorage.EXPECT().
		Upload(mock.Anything, input.Photos).
		Return([]string{"u1", "u2"}, nil)
	fx.geocoder.EXPECT().
		Resolve(mock.Anything, mock.AnythingOfType("entity.PostalAddress")).
		Return(entity.FailedGeocodeResult())
	expectTransaction(t, fx, 3, 9)

	result, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.True(t, result.GeocodingDegraded)
	assert.Equal(t, orb.Point{0, 0}, result.Property.Location.Point)
	assert.True(t, result.Property.Location.HasSentinelCoordinates())
}

func TestPropertyService_Create_NormalizesSetFields(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	input := validCreateInput()
	input.Amenities = []string{"WasherDryer, AirConditioning", "WasherDryer", " Dishwasher ", ""}
	input.Highlights = []string{"GreatView,GreatView", "QuietNeighborhood"}

	fx.mediaStorage.EXPECT().Upload(mock.Anything, input.Photos).Return([]string{"u1", "u2"}, nil)
	fx.geocoder.EXPECT().
		Resolve(mock.Anything, mock.AnythingOfType("entity.PostalAddress")).
		Return(entity.GeocodeResult{Point: orb.Point{1, 2}, Provider: "google"})
	expectTransaction(t, fx, 1, 2)

	result, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, []string{"WasherDryer", "AirConditioning", "Dishwasher"}, result.Property.Amenities)
	assert.Equal(t, []string{"GreatView", "QuietNeighborhood"}, result.Property.Highlights)
}

func TestPropertyService_Create_CoercionFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreatePropertyInput)
	}{
		{"non-numeric price", func(in *usecase.CreatePropertyInput) { in.PricePerMonth = "cheap" }},
		{"negative price", func(in *usecase.CreatePropertyInput) { in.PricePerMonth = "-1" }},
		{"fractional beds", func(in *usecase.CreatePropertyInput) { in.Beds = "2.5" }},
		{"unknown property type", func(in *usecase.CreatePropertyInput) { in.PropertyType = "Castle" }},
		{"bad boolean", func(in *usecase.CreatePropertyInput) { in.IsPetsAllowed = "maybe" }},
		{"missing name", func(in *usecase.CreatePropertyInput) { in.Name = "  " }},
		{"missing manager", func(in *usecase.CreatePropertyInput) { in.ManagerID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPropertyService(t)
			input := validCreateInput()
			tt.mutate(input)

			result, err := fx.service.Create(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, result)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INVALID_PROPERTY_DATA", appErr.ErrorCode())
			// rejected before any side effect
			fx.mediaStorage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestPropertyService_Search_CompilesAndDelegates(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	priceMin := 1000.0
	criteria := &search.Criteria{PriceMin: &priceMin}
	expected := []*entity.Property{{ID: 1, Name: "Sunny Loft"}}

	fx.propertyRepo.EXPECT().
		Search(ctx, mock.AnythingOfType("*search.CompiledPredicate")).
		Run(func(ctx context.Context, predicate *search.CompiledPredicate) {
			sql, args := predicate.WhereSQL()
			assert.Equal(t, "p.price_per_month >= ?", sql)
			assert.Equal(t, []any{1000.0}, args)
		}).
		Return(expected, nil)

	properties, err := fx.service.Search(ctx, criteria)

	require.NoError(t, err)
	assert.Equal(t, expected, properties)
}

func TestPropertyService_Search_InvalidFilter(t *testing.T) {
	fx := createTestPropertyService(t)
	criteria := &search.Criteria{PropertyType: "Castle"}

	properties, err := fx.service.Search(context.Background(), criteria)

	require.Error(t, err)
	assert.Nil(t, properties)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_FILTER", appErr.ErrorCode())
	fx.propertyRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestPropertyService_GetByID_Success(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	expected := &entity.Property{ID: 5, Name: "Sunny Loft"}

	fx.propertyRepo.EXPECT().FindByID(ctx, int64(5)).Return(expected, nil)

	property, err := fx.service.GetByID(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, expected, property)
}

func TestPropertyService_GetByID_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrPropertyNotFound)

	property, err := fx.service.GetByID(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, property)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROPERTY_NOT_FOUND", appErr.ErrorCode())
}

func TestPropertyService_LeasesForProperty(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	expected := []*entity.Lease{{
		ID:         1,
		StartDate:  start,
		EndDate:    start.AddDate(1, 0, 0),
		Rent:       2500,
		PropertyID: 5,
		TenantID:   "tenant-1",
		Tenant:     &entity.Tenant{ExternalID: "tenant-1", Name: "Jo Doe"},
	}}

	fx.leaseRepo.EXPECT().FindByProperty(ctx, int64(5)).Return(expected, nil)

	leases, err := fx.service.LeasesForProperty(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, expected, leases)
}
