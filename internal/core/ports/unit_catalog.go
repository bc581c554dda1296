// Package ports defines the contracts between the shipping core and its adapters.
// The measure registry satisfies the catalog ports; the metrics adapter satisfies
// the observer ports.
package ports

import (
	"shipping/internal/core/domain/model/measure"
)

// UnitCatalog resolves unit names and conversion rates.
// *measure.Registry implements it.
type UnitCatalog interface {
	measure.Converter

	// Lookup resolves a unit name or alias.
	// Returns errs.ObjectNotFoundError for unknown names.
	Lookup(name string) (measure.Unit, error)

	// Primitives returns the base units of a kind.
	Primitives(kind measure.Kind) []measure.Unit

	// SystemUnits returns the units of a kind that belong to a system, in registration order.
	SystemUnits(kind measure.Kind, system measure.System) []measure.Unit

	// Aliases returns every name a unit answers to, sorted.
	Aliases(unit measure.Unit) []string
}

// RateCacheStats reports how many conversion rates are memoised per kind.
type RateCacheStats interface {
	CachedRates() map[measure.Kind]int
}
