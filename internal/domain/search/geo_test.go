package search

import (
	"testing"

	domainerrors "roost/internal/domain/errors"
	"roost/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileProximity(t *testing.T, lat, lng float64) *CompiledPredicate {
	t.Helper()

	predicate, err := newTestCompiler().Compile(&Criteria{Latitude: &lat, Longitude: &lng})
	require.NoError(t, err)

	return predicate
}

func TestProximity_BindsGeographyDistanceClause(t *testing.T) {
	predicate := compileProximity(t, 37.7936, -122.3930)

	sql, args := predicate.WhereSQL()
	assert.Equal(t, "ST_DWithin(l.coordinates, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)", sql)
	// Point construction is (longitude, latitude); radius is the fixed
	// server-side constant.
	assert.Equal(t, []any{-122.3930, 37.7936, testRadiusMeters}, args)
}

func TestProximity_GeographyCastAtExtremeLatitudes(t *testing.T) {
	// The clause must compile identically at the equator and near a pole;
	// geodesic correctness comes from the geography cast, not from any
	// latitude-dependent degree math in the compiler.
	for _, lat := range []float64{0, 89.9, -89.9} {
		predicate := compileProximity(t, lat, 10)

		sql, args := predicate.WhereSQL()
		assert.Contains(t, sql, "::geography")
		assert.NotContains(t, sql, "111") // no km-per-degree approximation
		assert.Equal(t, lat, args[1])
	}
}

func TestProximity_RequiresBothCoordinates(t *testing.T) {
	lat := 37.7936
	_, err := newTestCompiler().Compile(&Criteria{Latitude: &lat})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFilter))

	lng := -122.3930
	_, err = newTestCompiler().Compile(&Criteria{Longitude: &lng})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFilter))
}

func TestProximity_RejectsOutOfRangeCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
	}{
		{name: "latitude beyond pole", lat: 95, lng: 10},
		{name: "longitude beyond antimeridian", lat: 10, lng: 181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestCompiler().Compile(&Criteria{Latitude: &tt.lat, Longitude: &tt.lng})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidFilter))
		})
	}
}
