// Package search compiles optional listing filters into one parameterized
// SQL predicate. Every clause binds its values as typed parameters; filter
// text never reaches the query string.
package search

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainerrors "roost/internal/domain/errors"
)

// anyValue is the client-side sentinel meaning "filter absent".
const anyValue = "any"

// Criteria is the request-scoped mapping of recognized filter names to
// optional typed values. It is built fresh per search request, compiled
// once, and discarded.
type Criteria struct {
	FavoriteIDs   []int64
	PriceMin      *float64
	PriceMax      *float64
	BedsMin       *int
	BathsMin      *float64
	SquareFeetMin *int
	SquareFeetMax *int
	PropertyType  string // raw value, validated at compile time
	Amenities     []string
	AvailableFrom *time.Time
	Latitude      *float64
	Longitude     *float64
}

// ParseCriteria reads the recognized query parameters into a Criteria.
// Absent parameters and the "any" sentinel are skipped; values that are
// present but unparseable fail with ErrInvalidFilter.
func ParseCriteria(values url.Values) (*Criteria, error) {
	crit := &Criteria{}

	if raw := values.Get("favoriteIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, domainerrors.ErrInvalidFilter.WrapMessage("favoriteIds must be a comma-separated list of ids")
			}
			crit.FavoriteIDs = append(crit.FavoriteIDs, id)
		}
	}

	var err error
	if crit.PriceMin, err = parseOptionalFloat(values, "priceMin"); err != nil {
		return nil, err
	}
	if crit.PriceMax, err = parseOptionalFloat(values, "priceMax"); err != nil {
		return nil, err
	}
	if crit.BedsMin, err = parseOptionalInt(values, "beds"); err != nil {
		return nil, err
	}
	if crit.BathsMin, err = parseOptionalFloat(values, "baths"); err != nil {
		return nil, err
	}
	if crit.SquareFeetMin, err = parseOptionalInt(values, "squareFeetMin"); err != nil {
		return nil, err
	}
	if crit.SquareFeetMax, err = parseOptionalInt(values, "squareFeetMax"); err != nil {
		return nil, err
	}

	if raw := values.Get("propertyType"); raw != "" && raw != anyValue {
		crit.PropertyType = raw
	}

	if raw := values.Get("amenities"); raw != "" && raw != anyValue {
		for _, amenity := range strings.Split(raw, ",") {
			if amenity = strings.TrimSpace(amenity); amenity != "" {
				crit.Amenities = append(crit.Amenities, amenity)
			}
		}
	}

	if raw := values.Get("availableFrom"); raw != "" && raw != anyValue {
		at, err := parseDate(raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidFilter.WrapMessage("availableFrom must be a date")
		}
		crit.AvailableFrom = &at
	}

	if crit.Latitude, err = parseOptionalFloat(values, "latitude"); err != nil {
		return nil, err
	}
	if crit.Longitude, err = parseOptionalFloat(values, "longitude"); err != nil {
		return nil, err
	}

	return crit, nil
}

func parseOptionalFloat(values url.Values, key string) (*float64, error) {
	raw := values.Get(key)
	if raw == "" || raw == anyValue {
		return nil, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, domainerrors.ErrInvalidFilter.WrapMessage(key + " must be a finite number")
	}

	return &f, nil
}

func parseOptionalInt(values url.Values, key string) (*int, error) {
	raw := values.Get(key)
	if raw == "" || raw == anyValue {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrInvalidFilter.WrapMessage(key + " must be an integer")
	}

	return &n, nil
}

func parseDate(raw string) (time.Time, error) {
	if at, err := time.Parse(time.RFC3339, raw); err == nil {
		return at, nil
	}

	return time.Parse("2006-01-02", raw)
}
