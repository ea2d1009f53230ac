package service

import (
	"context"

	"roost/internal/domain/entity"
)

// Geocoder resolves a structured postal address into coordinates.
//
// Resolution is best effort: implementations try their providers in order
// and return the sentinel GeocodeResult when all of them miss. Geocoding
// must never block listing creation, so Resolve does not return an error.
type Geocoder interface {
	Resolve(ctx context.Context, address entity.PostalAddress) entity.GeocodeResult
}
