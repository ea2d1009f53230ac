package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/delivery/http/response"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/search"
	"roost/internal/domain/service"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// photosField is the multipart field carrying listing images.
const photosField = "photos"

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// PropertyHandler holds dependencies for listing-related handlers
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// CoordinatesResponse is the decoded point of a location.
type CoordinatesResponse struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// LocationResponse is the address block of a listing.
type LocationResponse struct {
	ID          int64               `json:"id"`
	Address     string              `json:"address"`
	City        string              `json:"city"`
	State       string              `json:"state"`
	Country     string              `json:"country"`
	PostalCode  string              `json:"postalCode"`
	Coordinates CoordinatesResponse `json:"coordinates"`
}

// PropertyResponse is the wire form of one listing.
type PropertyResponse struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	PricePerMonth     float64           `json:"pricePerMonth"`
	SecurityDeposit   float64           `json:"securityDeposit"`
	ApplicationFee    float64           `json:"applicationFee"`
	Beds              int               `json:"beds"`
	Baths             float64           `json:"baths"`
	SquareFeet        int               `json:"squareFeet"`
	PropertyType      string            `json:"propertyType"`
	IsPetsAllowed     bool              `json:"isPetsAllowed"`
	IsParkingIncluded bool              `json:"isParkingIncluded"`
	Amenities         []string          `json:"amenities"`
	Highlights        []string          `json:"highlights"`
	PhotoUrls         []string          `json:"photoUrls"`
	ManagerID         string            `json:"managerId"`
	PostedDate        time.Time         `json:"postedDate"`
	Location          *LocationResponse `json:"location,omitempty"`

	// GeocodingDegraded is set on create responses when the address could
	// not be geocoded and the listing was stored with sentinel coordinates.
	GeocodingDegraded bool `json:"geocodingDegraded,omitempty"`
}

// TenantResponse is the renter identity embedded in lease listings.
type TenantResponse struct {
	ExternalID  string `json:"externalId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// LeaseResponse is the wire form of one lease.
type LeaseResponse struct {
	ID         int64           `json:"id"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Rent       float64         `json:"rent"`
	Deposit    float64         `json:"deposit"`
	PropertyID int64           `json:"propertyId"`
	Tenant     *TenantResponse `json:"tenant,omitempty"`
}

// Search handles GET /properties with optional filter query parameters.
func (h *PropertyHandler) Search(c echo.Context) error {
	criteria, err := search.ParseCriteria(c.QueryParams())
	if err != nil {
		return err
	}

	properties, err := h.propertyUC.Search(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	out := make([]*PropertyResponse, 0, len(properties))
	for _, property := range properties {
		out = append(out, toPropertyResponse(property, false))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetByID handles GET /properties/:id.
func (h *PropertyHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	property, err := h.propertyUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toPropertyResponse(property, false), "")
}

// Create handles POST /properties with a multipart listing submission.
func (h *PropertyHandler) Create(c echo.Context) error {
	photos, err := readPhotos(c)
	if err != nil {
		return err
	}

	managerID := c.FormValue("managerId")
	if managerID == "" {
		managerID = deliverycontext.GetUserID(c)
	}

	input := &usecase.CreatePropertyInput{
		Name:              c.FormValue("name"),
		Description:       c.FormValue("description"),
		PricePerMonth:     c.FormValue("pricePerMonth"),
		SecurityDeposit:   c.FormValue("securityDeposit"),
		ApplicationFee:    c.FormValue("applicationFee"),
		Beds:              c.FormValue("beds"),
		Baths:             c.FormValue("baths"),
		SquareFeet:        c.FormValue("squareFeet"),
		PropertyType:      c.FormValue("propertyType"),
		IsPetsAllowed:     c.FormValue("isPetsAllowed"),
		IsParkingIncluded: c.FormValue("isParkingIncluded"),
		Amenities:         formValues(c, "amenities"),
		Highlights:        formValues(c, "highlights"),
		Address:           c.FormValue("address"),
		City:              c.FormValue("city"),
		State:             c.FormValue("state"),
		Country:           c.FormValue("country"),
		PostalCode:        c.FormValue("postalCode"),
		ManagerID:         managerID,
		Photos:            photos,
	}

	result, err := h.propertyUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated,
		toPropertyResponse(result.Property, result.GeocodingDegraded),
		"Property created successfully")
}

// Leases handles GET /properties/:id/leases.
func (h *PropertyHandler) Leases(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	leases, err := h.propertyUC.LeasesForProperty(c.Request().Context(), id)
	if err != nil {
		return err
	}

	out := make([]*LeaseResponse, 0, len(leases))
	for _, lease := range leases {
		out = append(out, toLeaseResponse(lease))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("id must be an integer")
	}

	return id, nil
}

// formValues returns every value of a repeated multipart field.
func formValues(c echo.Context, field string) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	return form.Value[field]
}

// readPhotos buffers every uploaded photo so the storage layer can retry a
// failed write.
func readPhotos(c echo.Context) ([]service.MediaAsset, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrInvalidPropertyData.WrapMessage("expected multipart form data")
	}

	files := form.File[photosField]
	assets := make([]service.MediaAsset, 0, len(files))
	for _, file := range files {
		asset, err := readPhoto(file)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, nil
}

func readPhoto(file *multipart.FileHeader) (service.MediaAsset, error) {
	src, err := file.Open()
	if err != nil {
		return service.MediaAsset{}, domainerrors.ErrInvalidPropertyData.WrapMessage("unreadable photo upload")
	}
	defer src.Close()

	body, err := io.ReadAll(src)
	if err != nil {
		return service.MediaAsset{}, domainerrors.ErrInvalidPropertyData.WrapMessage("unreadable photo upload")
	}

	return service.MediaAsset{
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func toPropertyResponse(property *entity.Property, geocodingDegraded bool) *PropertyResponse {
	resp := &PropertyResponse{
		ID:                property.ID,
		Name:              property.Name,
		Description:       property.Description,
		PricePerMonth:     property.PricePerMonth,
		SecurityDeposit:   property.SecurityDeposit,
		ApplicationFee:    property.ApplicationFee,
		Beds:              property.Beds,
		Baths:             property.Baths,
		SquareFeet:        property.SquareFeet,
		PropertyType:      property.PropertyType.String(),
		IsPetsAllowed:     property.IsPetsAllowed,
		IsParkingIncluded: property.IsParkingIncluded,
		Amenities:         property.Amenities,
		Highlights:        property.Highlights,
		PhotoUrls:         property.PhotoURLs,
		ManagerID:         property.ManagerID,
		PostedDate:        property.PostedDate,
		GeocodingDegraded: geocodingDegraded,
	}
	if property.Location != nil {
		resp.Location = &LocationResponse{
			ID:         property.Location.ID,
			Address:    property.Location.Address,
			City:       property.Location.City,
			State:      property.Location.State,
			Country:    property.Location.Country,
			PostalCode: property.Location.PostalCode,
			Coordinates: CoordinatesResponse{
				Longitude: property.Location.Point[0],
				Latitude:  property.Location.Point[1],
			},
		}
	}

	return resp
}

func toLeaseResponse(lease *entity.Lease) *LeaseResponse {
	resp := &LeaseResponse{
		ID:         lease.ID,
		StartDate:  lease.StartDate,
		EndDate:    lease.EndDate,
		Rent:       lease.Rent,
		Deposit:    lease.Deposit,
		PropertyID: lease.PropertyID,
	}
	if lease.Tenant != nil {
		resp.Tenant = &TenantResponse{
			ExternalID:  lease.Tenant.ExternalID,
			Name:        lease.Tenant.Name,
			Email:       lease.Tenant.Email,
			PhoneNumber: lease.Tenant.PhoneNumber,
		}
	}

	return resp
}
