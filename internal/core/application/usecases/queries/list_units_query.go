package queries

import (
	"errors"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/pkg/guard"
)

var (
	ErrListUnitsQueryIsNotConstructed = errors.New(
		"ListUnitsQuery must be created via NewListUnitsQuery constructor",
	)
)

// ListUnitsQuery lists the registered units of one kind.
type ListUnitsQuery struct {
	kind measure.Kind

	guard guard.ConstructorGuard
}

// NewListUnitsQuery creates a query for a kind name such as "mass" or "length".
func NewListUnitsQuery(kind string) (ListUnitsQuery, error) {
	k, err := measure.ParseKind(kind)
	if err != nil {
		return ListUnitsQuery{}, err
	}

	return ListUnitsQuery{
		kind:  k,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUnitsQuery) Validate() error {
	return q.guard.Validate(ErrListUnitsQueryIsNotConstructed)
}

// Kind returns the requested kind.
func (q ListUnitsQuery) Kind() measure.Kind {
	return q.kind
}

// ListUnitsQueryResponse groups the units of a kind by system.
type ListUnitsQueryResponse struct {
	Kind       string
	Primitives []string
	Systems    []SystemUnits
}

// SystemUnits lists the units of one system.
type SystemUnits struct {
	System string
	Units  []UnitInfo
}

// UnitInfo is a unit with the aliases it answers to.
type UnitInfo struct {
	Name    string
	Aliases []string
}
