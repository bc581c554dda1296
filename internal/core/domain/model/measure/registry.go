package measure

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"shipping/internal/pkg/errs"
)

var (
	// ErrRegistryConfiguration is returned by the registration methods and by Verify.
	// A registry that fails to build is unusable; callers treat it as fatal at startup.
	ErrRegistryConfiguration = errors.New("unit registry configuration error")

	// ErrNoConversionPath is returned when two units cannot be converted into each other,
	// either because their kinds differ or because the conversion graph does not connect them.
	ErrNoConversionPath = errors.New("no conversion path")
)

// RateObserver is notified about every Rate lookup that reaches the memo cache.
// It must be safe for concurrent use.
type RateObserver interface {
	ObserveRateLookup(kind Kind, cached bool)
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRateObserver installs an observer for conversion-rate cache hits and misses.
func WithRateObserver(observer RateObserver) RegistryOption {
	return func(r *Registry) {
		r.observer = observer
	}
}

// Registry holds the units of every Kind, their grouping into systems and the sparse
// conversion graph between them. It implements Converter.
//
// A Registry is populated once during startup and then shared. Registration must
// finish before the registry is used concurrently. Conversion rates are memoised
// lazily; the memo cache of each kind is guarded by its own lock, so concurrent
// lookups are safe.
//
// Example:
//
//	registry := measure.NewRegistry()
//	_ = registry.RegisterPrimitive(measure.Inch, "in")
//	_ = registry.RegisterDerived(measure.Foot, 12, measure.Inch, "ft", "feet")
//	rate, _ := registry.Rate(measure.Foot, measure.Inch) // 12
type Registry struct {
	kinds    map[Kind]*kindRegistry
	names    map[string]Unit
	observer RateObserver
}

type unitPair struct {
	from Unit
	to   Unit
}

// kindRegistry is the registry of a single Kind.
// conversions[a][b] == m means one a equals m b, so m is also rate(a, b).
type kindRegistry struct {
	kind        Kind
	units       []Unit
	primitives  map[Unit]struct{}
	systems     map[System]map[Unit]struct{}
	conversions map[Unit]map[Unit]float64

	mu    sync.RWMutex
	cache map[unitPair]float64
}

// NewRegistry creates an empty registry for all kinds.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		kinds: make(map[Kind]*kindRegistry, len(Kinds())),
		names: make(map[string]Unit),
	}
	for _, k := range Kinds() {
		r.kinds[k] = &kindRegistry{
			kind:        k,
			primitives:  make(map[Unit]struct{}),
			systems:     make(map[System]map[Unit]struct{}),
			conversions: make(map[Unit]map[Unit]float64),
			cache:       make(map[unitPair]float64),
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPrimitive adds a base unit of its kind and system. Aliases become
// additional names understood by Lookup.
//
// Returns:
//   - nil on success
//   - ErrRegistryConfiguration if the unit is invalid or any of its names is taken
func (r *Registry) RegisterPrimitive(unit Unit, aliases ...string) error {
	kr, err := r.prepare(unit, aliases)
	if err != nil {
		return err
	}

	kr.mu.Lock()
	defer kr.mu.Unlock()

	kr.add(unit)
	kr.primitives[unit] = struct{}{}
	r.addNames(unit, aliases)
	return nil
}

// RegisterDerived declares unit == multiple * reference. The edge and its reciprocal are
// inserted into the conversion graph. When reference is not primitive, the new unit
// also gets a direct edge to every primitive reference is directly connected to, so
// every derived unit is one hop away from a primitive.
//
// Parameters:
//   - unit: the unit being defined
//   - multiple: how many reference units one unit is worth (finite, > 0)
//   - reference: an already registered unit of the same kind
//   - aliases: extra names for Lookup
//
// Returns:
//   - nil on success
//   - ErrRegistryConfiguration if reference is undefined, the kinds differ,
//     the multiple is not a positive finite number or a name is taken
//
// Example:
//
//	_ = registry.RegisterDerived(measure.Yard, 3, measure.Foot, "yd", "yards")
func (r *Registry) RegisterDerived(unit Unit, multiple float64, reference Unit, aliases ...string) error {
	kr, err := r.prepare(unit, aliases)
	if err != nil {
		return err
	}
	if err = r.checkEdge(unit, multiple, reference); err != nil {
		return err
	}

	kr.mu.Lock()
	defer kr.mu.Unlock()

	kr.add(unit)
	kr.link(unit, reference, multiple)
	if !kr.isPrimitive(reference) {
		for target, m := range kr.conversions[reference] {
			if kr.isPrimitive(target) {
				kr.link(unit, target, multiple*m)
			}
		}
	}
	r.addNames(unit, aliases)
	return nil
}

// RegisterEquivalence connects two already registered units with unit == multiple * other.
// It is how separate systems of a kind are bridged, e.g. one inch is 0.0254 metre.
func (r *Registry) RegisterEquivalence(unit Unit, multiple float64, other Unit) error {
	kr, ok := r.kinds[unit.kind]
	if !ok || !kr.has(unit) {
		return fmt.Errorf("%w: %s is not registered", ErrRegistryConfiguration, unit)
	}
	if err := r.checkEdge(unit, multiple, other); err != nil {
		return err
	}
	if unit == other {
		return fmt.Errorf("%w: %s cannot be equivalent to itself", ErrRegistryConfiguration, unit)
	}

	kr.mu.Lock()
	defer kr.mu.Unlock()

	kr.link(unit, other, multiple)
	clear(kr.cache)
	return nil
}

// Lookup resolves a unit by its canonical name or one of its aliases.
// Matching ignores case and treats spaces, dashes and underscores alike.
//
// Returns:
//   - the registered Unit
//   - errs.ObjectNotFoundError if the name is unknown
func (r *Registry) Lookup(name string) (Unit, error) {
	if u, ok := r.names[normaliseName(name)]; ok {
		return u, nil
	}
	return Unit{}, errs.NewObjectNotFoundError("unit", name)
}

// Units returns the units of a kind in registration order.
func (r *Registry) Units(kind Kind) []Unit {
	kr, ok := r.kinds[kind]
	if !ok {
		return nil
	}
	kr.mu.RLock()
	defer kr.mu.RUnlock()
	return slices.Clone(kr.units)
}

// Primitives returns the primitive units of a kind in registration order.
func (r *Registry) Primitives(kind Kind) []Unit {
	kr, ok := r.kinds[kind]
	if !ok {
		return nil
	}
	kr.mu.RLock()
	defer kr.mu.RUnlock()

	var primitives []Unit
	for _, u := range kr.units {
		if kr.isPrimitive(u) {
			primitives = append(primitives, u)
		}
	}
	return primitives
}

// SystemUnits returns the units of a kind that belong to system, in registration order.
func (r *Registry) SystemUnits(kind Kind, system System) []Unit {
	kr, ok := r.kinds[kind]
	if !ok {
		return nil
	}
	kr.mu.RLock()
	defer kr.mu.RUnlock()

	var units []Unit
	for _, u := range kr.units {
		if _, ok = kr.systems[system][u]; ok {
			units = append(units, u)
		}
	}
	return units
}

// Aliases returns every name Lookup accepts for unit, sorted.
func (r *Registry) Aliases(unit Unit) []string {
	var names []string
	for name, u := range r.names {
		if u == unit {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether unit belongs to this registry.
func (r *Registry) IsRegistered(unit Unit) bool {
	kr, ok := r.kinds[unit.kind]
	if !ok {
		return false
	}
	kr.mu.RLock()
	defer kr.mu.RUnlock()
	return kr.has(unit)
}

func (r *Registry) prepare(unit Unit, aliases []string) (*kindRegistry, error) {
	if err := unit.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryConfiguration, err)
	}

	kr := r.kinds[unit.kind]
	if kr.has(unit) {
		return nil, fmt.Errorf("%w: %s is already registered", ErrRegistryConfiguration, unit)
	}

	for _, name := range append([]string{unit.name}, aliases...) {
		key := normaliseName(name)
		if key == "" {
			return nil, fmt.Errorf("%w: empty alias for %s", ErrRegistryConfiguration, unit)
		}
		if existing, taken := r.names[key]; taken {
			return nil, fmt.Errorf("%w: name %q of %s is already used by %s",
				ErrRegistryConfiguration, key, unit, existing)
		}
	}
	return kr, nil
}

func (r *Registry) checkEdge(unit Unit, multiple float64, reference Unit) error {
	if reference.kind != unit.kind {
		return fmt.Errorf("%w: %s (%s) cannot reference %s (%s)",
			ErrRegistryConfiguration, unit, unit.kind, reference, reference.kind)
	}
	if !r.kinds[reference.kind].has(reference) {
		return fmt.Errorf("%w: reference unit %s of %s is not defined", ErrRegistryConfiguration, reference, unit)
	}
	if math.IsNaN(multiple) || math.IsInf(multiple, 0) || multiple <= 0 {
		return fmt.Errorf("%w: multiple %v for %s must be a positive finite number",
			ErrRegistryConfiguration, multiple, unit)
	}
	return nil
}

func (r *Registry) addNames(unit Unit, aliases []string) {
	r.names[unit.name] = unit
	for _, alias := range aliases {
		r.names[normaliseName(alias)] = unit
	}
}

func (kr *kindRegistry) has(u Unit) bool {
	_, ok := kr.conversions[u]
	return ok
}

func (kr *kindRegistry) isPrimitive(u Unit) bool {
	_, ok := kr.primitives[u]
	return ok
}

func (kr *kindRegistry) add(u Unit) {
	kr.units = append(kr.units, u)
	kr.conversions[u] = make(map[Unit]float64)
	if kr.systems[u.system] == nil {
		kr.systems[u.system] = make(map[Unit]struct{})
	}
	kr.systems[u.system][u] = struct{}{}
}

// link inserts a == m * b and its reciprocal. Existing edges are kept.
func (kr *kindRegistry) link(a, b Unit, m float64) {
	if _, ok := kr.conversions[a][b]; !ok {
		kr.conversions[a][b] = m
	}
	if _, ok := kr.conversions[b][a]; !ok {
		kr.conversions[b][a] = 1 / m
	}
}
