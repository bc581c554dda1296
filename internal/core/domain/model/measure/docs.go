// Package measure implements dimensioned quantities and the unit-conversion engine
// behind them.
//
// The package includes:
//   - Kind and System: the categories (mass, length) and groupings (metric, imperial) of units
//   - Unit: a comparable unit value scoped to one kind and one system
//   - Registry: per-kind primitives, systems and a sparse conversion graph, plus the
//     memoising resolver that finds a rate between any two connected units
//   - Quantity: an immutable (amount, unit) pair whose equality, ordering and
//     arithmetic are normalised to the receiver's unit
//
// A Registry is built once at startup, usually with NewStandardRegistry, and passed to
// everything that creates quantities. There is no package-level registry.
//
// Example:
//
//	registry, err := measure.NewStandardRegistry()
//	if err != nil {
//	    return err
//	}
//	sixFeet, _ := registry.NewQuantity(6, "feet")
//	twoYards, _ := registry.NewQuantity(2, "yd")
//	sixFeet.IsEqual(twoYards) // true
package measure
