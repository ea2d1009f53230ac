package entity

import "github.com/paulmach/orb"

// PostalAddress is the structured address handed to the geocoding chain.
type PostalAddress struct {
	Street     string
	City       string
	State      string
	Country    string
	PostalCode string
}

// GeocodeResult carries resolved coordinates and the provider that produced
// them. A failed resolution keeps the (0,0) sentinel and sets Failed; it is
// a degraded outcome, never an error.
type GeocodeResult struct {
	Point    orb.Point // (longitude, latitude)
	Provider string
	Failed   bool
}

// FailedGeocodeResult returns the sentinel result used when every provider
// in the chain missed.
func FailedGeocodeResult() GeocodeResult {
	return GeocodeResult{Point: orb.Point{0, 0}, Failed: true}
}
