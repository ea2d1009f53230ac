package search

import (
	"math"

	domainerrors "roost/internal/domain/errors"
)

// proximityBuilder produces the geodesic "within radius of point" clause.
// ST_DWithin on geography measures true earth-surface distance, so the
// filter is correct at every latitude, unlike flat-degree comparisons. The
// radius is the compiler's configured constant, never request input.
func proximityBuilder(radiusMeters float64) clauseBuilder {
	return func(crit *Criteria) (*Clause, error) {
		if crit.Latitude == nil && crit.Longitude == nil {
			return nil, nil
		}

		if crit.Latitude == nil || crit.Longitude == nil {
			return nil, domainerrors.ErrInvalidFilter.WrapMessage("latitude and longitude must be supplied together")
		}

		lat, lng := *crit.Latitude, *crit.Longitude
		if !validCoordinate(lat, 90) || !validCoordinate(lng, 180) {
			return nil, domainerrors.ErrInvalidFilter.WrapMessage("latitude or longitude out of range")
		}

		return &Clause{
			SQL:  "ST_DWithin(l.coordinates, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			Args: []any{lng, lat, radiusMeters},
		}, nil
	}
}

func validCoordinate(v, bound float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -bound && v <= bound
}
