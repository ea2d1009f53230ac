package entity

import "github.com/paulmach/orb"

// Location is the postal address and geographic point owned by exactly one
// property. It is created with the property and never shared.
type Location struct {
	ID         int64
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
	Point      orb.Point // (longitude, latitude)
}

// HasSentinelCoordinates reports whether the point is the (0,0) placeholder
// written when geocoding failed. Callers use this to detect degraded rows.
func (l *Location) HasSentinelCoordinates() bool {
	return l.Point[0] == 0 && l.Point[1] == 0
}
