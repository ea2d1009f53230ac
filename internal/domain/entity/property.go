package entity

import "time"

// Property is a rental listing. It owns exactly one Location and carries an
// external manager identity reference; photos are ordered object-store URLs.
type Property struct {
	ID                int64
	Name              string
	Description       string
	PricePerMonth     float64
	SecurityDeposit   float64
	ApplicationFee    float64
	Beds              int
	Baths             float64
	SquareFeet        int
	PropertyType      PropertyType
	IsPetsAllowed     bool
	IsParkingIncluded bool
	Amenities         []string
	Highlights        []string
	PhotoURLs         []string
	ManagerID         string
	PostedDate        time.Time

	Location *Location
}
