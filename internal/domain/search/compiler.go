package search

import (
	"encoding/json"
	"strings"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/errors"
)

// Clause is a single filter condition with its bound values. SQL refers to
// the search query's aliases: p for properties, l for locations.
type Clause struct {
	SQL  string
	Args []any
}

// CompiledPredicate is an ordered clause list combined with AND. It is
// built once per request, consumed by the repository, then discarded.
type CompiledPredicate struct {
	clauses []Clause
}

// Clauses returns the ordered clause list.
func (p *CompiledPredicate) Clauses() []Clause {
	return p.clauses
}

// Empty reports whether no filter compiled to a clause. An empty predicate
// matches every record.
func (p *CompiledPredicate) Empty() bool {
	return len(p.clauses) == 0
}

// WhereSQL folds the clauses into one AND expression with a flat argument
// list. An empty predicate yields an empty string.
func (p *CompiledPredicate) WhereSQL() (string, []any) {
	if p.Empty() {
		return "", nil
	}

	parts := make([]string, 0, len(p.clauses))
	var args []any
	for _, clause := range p.clauses {
		parts = append(parts, clause.SQL)
		args = append(args, clause.Args...)
	}

	return strings.Join(parts, " AND "), args
}

// clauseBuilder maps one optional filter to at most one clause. Returning
// (nil, nil) means the filter is absent and contributes nothing.
type clauseBuilder func(*Criteria) (*Clause, error)

// Compiler turns Criteria into a CompiledPredicate. The proximity radius is
// fixed at construction; requests cannot widen it.
type Compiler struct {
	builders []clauseBuilder
}

// NewCompiler creates a compiler with the given proximity radius in meters.
func NewCompiler(radiusMeters float64) *Compiler {
	return &Compiler{
		builders: []clauseBuilder{
			buildFavoriteIDs,
			buildPriceMin,
			buildPriceMax,
			buildBedsMin,
			buildBathsMin,
			buildSquareFeetMin,
			buildSquareFeetMax,
			buildPropertyType,
			buildAmenities,
			buildAvailableFrom,
			proximityBuilder(radiusMeters),
		},
	}
}

// Compile runs every builder in order and collects the produced clauses.
// Filters with absent values are skipped, so an empty Criteria compiles to
// an empty predicate.
func (c *Compiler) Compile(crit *Criteria) (*CompiledPredicate, error) {
	predicate := &CompiledPredicate{}
	for _, build := range c.builders {
		clause, err := build(crit)
		if err != nil {
			return nil, err
		}
		if clause != nil {
			predicate.clauses = append(predicate.clauses, *clause)
		}
	}

	return predicate, nil
}

func buildFavoriteIDs(crit *Criteria) (*Clause, error) {
	if len(crit.FavoriteIDs) == 0 {
		return nil, nil
	}

	return &Clause{SQL: "p.id IN (?)", Args: []any{crit.FavoriteIDs}}, nil
}

func buildPriceMin(crit *Criteria) (*Clause, error) {
	if crit.PriceMin == nil {
		return nil, nil
	}

	return &Clause{SQL: "p.price_per_month >= ?", Args: []any{*crit.PriceMin}}, nil
}

func buildPriceMax(crit *Criteria) (*Clause, error) {
	if crit.PriceMax == nil {
		return nil, nil
	}

	return &Clause{SQL: "p.price_per_month <= ?", Args: []any{*crit.PriceMax}}, nil
}

func buildBedsMin(crit *Criteria) (*Clause, error) {
	if crit.BedsMin == nil {
		return nil, nil
	}

	return &Clause{SQL: "p.beds >= ?", Args: []any{*crit.BedsMin}}, nil
}

func buildBathsMin(crit *Criteria) (*Clause, error) {
	if crit.BathsMin == nil {
		return nil, nil
	}

	return &Clause{SQL: "p.baths >= ?", Args: []any{*crit.BathsMin}}, nil
}

func buildSquareFeetMin(crit *Criteria) (*Clause, error) {
	if crit.SquareFeetMin == nil {
		return nil, nil
	}

	return &Clause{SQL: "p.square_feet >= ?", Args: []any{*crit.SquareFeetMin}}, nil
}

func buildSquareFeetMax(crit *Criteria) (*Clause, error) {
	if crit.SquareFeetMax == nil {
		return nil, nil
	}

	return &Clause{SQL: "p.square_feet <= ?", Args: []any{*crit.SquareFeetMax}}, nil
}

func buildPropertyType(crit *Criteria) (*Clause, error) {
	if crit.PropertyType == "" {
		return nil, nil
	}

	propertyType, err := entity.ParsePropertyType(crit.PropertyType)
	if err != nil {
		return nil, domainerrors.ErrInvalidFilter.WrapMessage("propertyType is not a recognized type")
	}

	return &Clause{SQL: "p.property_type = ?", Args: []any{propertyType.String()}}, nil
}

// buildAmenities uses jsonb containment: a listing matches only when its
// amenity set is a superset of the requested set.
func buildAmenities(crit *Criteria) (*Clause, error) {
	if len(crit.Amenities) == 0 {
		return nil, nil
	}

	encoded, err := json.Marshal(crit.Amenities)
	if err != nil {
		return nil, errors.Wrap(err, "marshal amenities filter")
	}

	return &Clause{SQL: "p.amenities @> ?::jsonb", Args: []any{string(encoded)}}, nil
}

// buildAvailableFrom is a correlated existence check rather than a join, so
// a property with several qualifying leases still appears once.
func buildAvailableFrom(crit *Criteria) (*Clause, error) {
	if crit.AvailableFrom == nil {
		return nil, nil
	}

	return &Clause{
		SQL:  "EXISTS (SELECT 1 FROM leases le WHERE le.property_id = p.id AND le.start_date <= ?)",
		Args: []any{*crit.AvailableFrom},
	}, nil
}
