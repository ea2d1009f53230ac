package postgres

import (
	"context"
	"encoding/json"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/search"
	"roost/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// searchSelect is the read query the compiled predicate is appended to.
// Coordinates are decoded in SQL so callers always receive numeric
// longitude/latitude instead of raw geography bytes.
const searchSelect = `
SELECT
    p.id, p.name, p.description, p.price_per_month, p.security_deposit,
    p.application_fee, p.beds, p.baths, p.square_feet, p.property_type,
    p.is_pets_allowed, p.is_parking_included, p.amenities, p.highlights,
    p.photo_urls, p.manager_id, p.posted_date,
    l.id AS location_id, l.address, l.city, l.state, l.country, l.postal_code,
    ST_X(l.coordinates::geometry) AS longitude,
    ST_Y(l.coordinates::geometry) AS latitude
FROM properties p
JOIN locations l ON p.location_id = l.id`

// propertyRow is the scan target for the denormalized search query.
type propertyRow struct {
	ID                int64          `gorm:"column:id"`
	Name              string         `gorm:"column:name"`
	Description       string         `gorm:"column:description"`
	PricePerMonth     float64        `gorm:"column:price_per_month"`
	SecurityDeposit   float64        `gorm:"column:security_deposit"`
	ApplicationFee    float64        `gorm:"column:application_fee"`
	Beds              int            `gorm:"column:beds"`
	Baths             float64        `gorm:"column:baths"`
	SquareFeet        int            `gorm:"column:square_feet"`
	PropertyType      string         `gorm:"column:property_type"`
	IsPetsAllowed     bool           `gorm:"column:is_pets_allowed"`
	IsParkingIncluded bool           `gorm:"column:is_parking_included"`
	Amenities         datatypes.JSON `gorm:"column:amenities"`
	Highlights        datatypes.JSON `gorm:"column:highlights"`
	PhotoUrls         datatypes.JSON `gorm:"column:photo_urls"`
	ManagerID         string         `gorm:"column:manager_id"`
	PostedDate        time.Time      `gorm:"column:posted_date"`
	LocationID        int64          `gorm:"column:location_id"`
	Address           string         `gorm:"column:address"`
	City              string         `gorm:"column:city"`
	State             string         `gorm:"column:state"`
	Country           string         `gorm:"column:country"`
	PostalCode        string         `gorm:"column:postal_code"`
	Longitude         float64        `gorm:"column:longitude"`
	Latitude          float64        `gorm:"column:latitude"`
}

// propertyRepository implements the domain.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// Search executes the compiled predicate as one read query. Clause text and
// bound arguments stay separate all the way to the driver.
func (repo *propertyRepository) Search(ctx context.Context, predicate *search.CompiledPredicate) ([]*entity.Property, error) {
	query := searchSelect
	var args []any
	if whereSQL, whereArgs := predicate.WhereSQL(); whereSQL != "" {
		query += "\nWHERE " + whereSQL
		args = whereArgs
	}
	query += "\nORDER BY p.posted_date DESC, p.id DESC"

	var rows []propertyRow
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to execute property search")
	}

	properties := make([]*entity.Property, 0, len(rows))
	for i := range rows {
		property, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	return properties, nil
}

// FindByID returns one property with decoded coordinates.
func (repo *propertyRepository) FindByID(ctx context.Context, id int64) (*entity.Property, error) {
	var row propertyRow
	result := repo.db.WithContext(ctx).Raw(searchSelect+"\nWHERE p.id = ?", id).Scan(&row)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to find property by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPropertyNotFound
	}

	return row.toDomain()
}

// CreateProperty inserts the property row. The location row must already
// exist within the same transaction.
func (repo *propertyRepository) CreateProperty(ctx context.Context, property *entity.Property) error {
	if property.Location == nil || property.Location.ID == 0 {
		return errors.New("property has no persisted location")
	}

	propertyM, err := fromPropertyDomain(property)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStorageFailure.WrapMessage("invalid location reference")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStorageFailure.WrapMessage("location already owned by another property")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrStorageFailure.WrapMessage("missing required property attribute")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.ID = propertyM.ID

	return nil
}

// CountProperties returns the total number of property rows.
func (repo *propertyRepository) CountProperties(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PropertyModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count properties")
	}

	return count, nil
}

// --- Mapper Functions ---

func (row *propertyRow) toDomain() (*entity.Property, error) {
	amenities, err := decodeStringSlice(row.Amenities)
	if err != nil {
		return nil, errors.Wrap(err, "decode amenities")
	}
	highlights, err := decodeStringSlice(row.Highlights)
	if err != nil {
		return nil, errors.Wrap(err, "decode highlights")
	}
	photoURLs, err := decodeStringSlice(row.PhotoUrls)
	if err != nil {
		return nil, errors.Wrap(err, "decode photo urls")
	}

	return &entity.Property{
		ID:                row.ID,
		Name:              row.Name,
		Description:       row.Description,
		PricePerMonth:     row.PricePerMonth,
		SecurityDeposit:   row.SecurityDeposit,
		ApplicationFee:    row.ApplicationFee,
		Beds:              row.Beds,
		Baths:             row.Baths,
		SquareFeet:        row.SquareFeet,
		PropertyType:      entity.PropertyType(row.PropertyType),
		IsPetsAllowed:     row.IsPetsAllowed,
		IsParkingIncluded: row.IsParkingIncluded,
		Amenities:         amenities,
		Highlights:        highlights,
		PhotoURLs:         photoURLs,
		ManagerID:         row.ManagerID,
		PostedDate:        row.PostedDate,
		Location: &entity.Location{
			ID:         row.LocationID,
			Address:    row.Address,
			City:       row.City,
			State:      row.State,
			Country:    row.Country,
			PostalCode: row.PostalCode,
			Point:      orb.Point{row.Longitude, row.Latitude},
		},
	}, nil
}

func fromPropertyDomain(property *entity.Property) (*model.PropertyModel, error) {
	amenities, err := encodeStringSlice(property.Amenities)
	if err != nil {
		return nil, errors.Wrap(err, "encode amenities")
	}
	highlights, err := encodeStringSlice(property.Highlights)
	if err != nil {
		return nil, errors.Wrap(err, "encode highlights")
	}
	photoURLs, err := encodeStringSlice(property.PhotoURLs)
	if err != nil {
		return nil, errors.Wrap(err, "encode photo urls")
	}

	return &model.PropertyModel{
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
		Amenities:         amenities,
		Highlights:        highlights,
		PhotoUrls:         photoURLs,
		ManagerID:         property.ManagerID,
		PostedDate:        property.PostedDate,
		LocationID:        property.Location.ID,
	}, nil
}

func decodeStringSlice(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}

	return values, nil
}

func encodeStringSlice(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(encoded), nil
}
