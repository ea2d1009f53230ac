package model

import (
	"context"

	"roost/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GeoPoint maps an orb.Point onto a PostGIS geography(POINT,4326) column.
// Reads scan the EWKB hex PostGIS returns; writes go through ST_MakePoint so
// the value is constructed server-side from bound parameters.
type GeoPoint orb.Point

// Scan implements sql.Scanner.
func (p *GeoPoint) Scan(value any) error {
	if value == nil {
		*p = GeoPoint{}

		return nil
	}

	var point orb.Point
	if err := ewkb.Scanner(&point).Scan(value); err != nil {
		return errors.Wrap(err, "scan geography point")
	}
	*p = GeoPoint(point)

	return nil
}

// GormDataType tells GORM the column type for migrations.
func (GeoPoint) GormDataType() string {
	return "geography(POINT,4326)"
}

// GormValue renders the write expression with bound longitude/latitude.
func (p GeoPoint) GormValue(_ context.Context, _ *gorm.DB) clause.Expr {
	return clause.Expr{
		SQL:  "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography",
		Vars: []any{p[0], p[1]},
	}
}

// Point converts back to the domain's orb representation.
func (p GeoPoint) Point() orb.Point {
	return orb.Point(p)
}
