package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/domain/entity"
	"roost/internal/domain/search"
	mockUsecase "roost/internal/mocks/usecase"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPropertyHandler(t *testing.T) (*PropertyHandler, *mockUsecase.MockPropertyUsecase) {
	propertyUC := mockUsecase.NewMockPropertyUsecase(t)
	handler := &PropertyHandler{
		propertyUC: propertyUC,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return handler, propertyUC
}

func sampleProperty() *entity.Property {
	return &entity.Property{
		ID:            5,
		Name:          "Sunny Loft",
		PricePerMonth: 2500,
		Beds:          2,
		Baths:         1.5,
		SquareFeet:    900,
		PropertyType:  entity.PropertyTypeApartment,
		Amenities:     []string{"WasherDryer"},
		Highlights:    []string{"GreatView"},
		PhotoURLs:     []string{"https://cdn.example.com/properties/1-front.jpg"},
		ManagerID:     "mgr-42",
		PostedDate:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Location: &entity.Location{
			ID:         7,
			Address:    "1 Market St",
			City:       "San Francisco",
			State:      "CA",
			Country:    "USA",
			PostalCode: "94105",
			Point:      orb.Point{-122.39, 37.79},
		},
	}
}

func TestPropertyHandler_Search(t *testing.T) {
	handler, propertyUC := newTestPropertyHandler(t)

	propertyUC.EXPECT().
		Search(mock.Anything, mock.AnythingOfType("*search.Criteria")).
		Run(func(ctx context.Context, criteria *search.Criteria) {
			require.NotNil(t, criteria.PriceMin)
			assert.Equal(t, 1000.0, *criteria.PriceMin)
			assert.Equal(t, "Apartment", criteria.PropertyType)
		}).
		Return([]*entity.Property{sampleProperty()}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/properties?priceMin=1000&propertyType=Apartment&beds=any", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"name":"Sunny Loft"`)
	assert.Contains(t, body, `"longitude":-122.39`)
	assert.Contains(t, body, `"latitude":37.79`)
	assert.NotContains(t, body, "geocodingDegraded")
}

func TestPropertyHandler_Search_MalformedFilter(t *testing.T) {
	handler, propertyUC := newTestPropertyHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/properties?priceMin=lots", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Search(c)
	require.Error(t, err)
	propertyUC.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestPropertyHandler_GetByID(t *testing.T) {
	handler, propertyUC := newTestPropertyHandler(t)

	propertyUC.EXPECT().GetByID(mock.Anything, int64(5)).Return(sampleProperty(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, handler.GetByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestPropertyHandler_GetByID_BadID(t *testing.T) {
	handler, _ := newTestPropertyHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.Error(t, handler.GetByID(c))
}

func buildMultipartCreateRequest(t *testing.T) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"name":            "Sunny Loft",
		"description":     "Bright loft",
		"pricePerMonth":   "2500",
		"securityDeposit": "2500",
		"applicationFee":  "50",
		"beds":            "2",
		"baths":           "1.5",
		"squareFeet":      "900",
		"propertyType":    "Apartment",
		"isPetsAllowed":   "true",
		"amenities":       "WasherDryer,AirConditioning",
		"highlights":      "GreatView",
		"address":         "1 Market St",
		"city":            "San Francisco",
		"state":           "CA",
		"country":         "USA",
		"postalCode":      "94105",
		"managerId":       "mgr-42",
	}
	for field, value := range fields {
		require.NoError(t, writer.WriteField(field, value))
	}

	photo, err := writer.CreateFormFile(photosField, "front.jpg")
	require.NoError(t, err)
	_, err = photo.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/properties", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestPropertyHandler_Create(t *testing.T) {
	handler, propertyUC := newTestPropertyHandler(t)

	property := sampleProperty()
	propertyUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreatePropertyInput")).
		Run(func(ctx context.Context, input *usecase.CreatePropertyInput) {
			assert.Equal(t, "Sunny Loft", input.Name)
			assert.Equal(t, "2500", input.PricePerMonth)
			assert.Equal(t, "mgr-42", input.ManagerID)
			assert.Equal(t, []string{"WasherDryer,AirConditioning"}, input.Amenities)
			require.Len(t, input.Photos, 1)
			assert.Equal(t, "front.jpg", input.Photos[0].FileName)
			assert.Equal(t, []byte("jpeg-bytes"), input.Photos[0].Body)
		}).
		Return(&usecase.CreatePropertyResult{Property: property}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(buildMultipartCreateRequest(t), rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "geocodingDegraded")
}

func TestPropertyHandler_Create_DegradedGeocodingFlagged(t *testing.T) {
	handler, propertyUC := newTestPropertyHandler(t)

	property := sampleProperty()
	property.Location.Point = orb.Point{0, 0}
	propertyUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreatePropertyInput")).
		Return(&usecase.CreatePropertyResult{Property: property, GeocodingDegraded: true}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(buildMultipartCreateRequest(t), rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"geocodingDegraded":true`)
}

func TestPropertyHandler_Create_ManagerIDFallsBackToIdentity(t *testing.T) {
	handler, propertyUC := newTestPropertyHandler(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("name", "Sunny Loft"))
	require.NoError(t, writer.Close())

	propertyUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreatePropertyInput")).
		Run(func(ctx context.Context, input *usecase.CreatePropertyInput) {
			assert.Equal(t, "mgr-99", input.ManagerID)
		}).
		Return(&usecase.CreatePropertyResult{Property: sampleProperty()}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/properties", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(deliverycontext.KeyUserID), "mgr-99")

	require.NoError(t, handler.Create(c))
}

func TestPropertyHandler_Leases(t *testing.T) {
	handler, propertyUC := newTestPropertyHandler(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	propertyUC.EXPECT().
		LeasesForProperty(mock.Anything, int64(5)).
		Return([]*entity.Lease{{
			ID:         1,
			StartDate:  start,
			EndDate:    start.AddDate(1, 0, 0),
			Rent:       2500,
			PropertyID: 5,
			Tenant:     &entity.Tenant{ExternalID: "tenant-1", Name: "Jo Doe", Email: "jo@example.com"},
		}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id/leases")
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, handler.Leases(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"externalId":"tenant-1"`)
}
