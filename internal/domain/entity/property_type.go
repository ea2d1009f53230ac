package entity

import "roost/internal/errors"

// PropertyType is the closed set of listing categories.
type PropertyType string

const (
	PropertyTypeRooms     PropertyType = "Rooms"
	PropertyTypeTinyhouse PropertyType = "Tinyhouse"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeCottage   PropertyType = "Cottage"
)

// ErrUnknownPropertyType is returned when a value is not in the enumeration.
var ErrUnknownPropertyType = errors.New("unknown property type")

var propertyTypes = map[PropertyType]struct{}{
	PropertyTypeRooms:     {},
	PropertyTypeTinyhouse: {},
	PropertyTypeApartment: {},
	PropertyTypeVilla:     {},
	PropertyTypeTownhouse: {},
	PropertyTypeCottage:   {},
}

// ParsePropertyType validates a raw value against the enumeration.
func ParsePropertyType(raw string) (PropertyType, error) {
	pt := PropertyType(raw)
	if _, ok := propertyTypes[pt]; !ok {
		return "", errors.Wrapf(ErrUnknownPropertyType, "%q", raw)
	}

	return pt, nil
}

func (pt PropertyType) String() string {
	return string(pt)
}
