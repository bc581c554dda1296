package measure

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// rateTolerance is the relative difference below which two floating point
// amounts or rates are treated as equal.
const rateTolerance = 1e-9

// Rate returns r such that an amount in from multiplied by r is the same amount in to.
//
// Resolution order:
//  1. from == to yields 1
//  2. a memoised rate
//  3. a direct edge of the conversion graph
//  4. a unit both are directly connected to (the lowest named one when several exist)
//  5. bridging through the primitives of both units, rate(p1, p2) found by graph search
//  6. a breadth-first search of the whole graph
//
// Every rate resolved in steps 3-6 is memoised together with its reciprocal.
//
// Returns:
//   - the conversion rate
//   - ErrNoConversionPath if the kinds differ, either unit is not registered
//     or the graph does not connect them
//
// Example:
//
//	rate, err := registry.Rate(measure.Yard, measure.Foot) // 3, nil
//	_, err = registry.Rate(measure.Gram, measure.Inch)     // ErrNoConversionPath
func (r *Registry) Rate(from, to Unit) (float64, error) {
	if from.kind != to.kind {
		return 0, fmt.Errorf("%w: %s is %s, %s is %s", ErrNoConversionPath, from, from.kind, to, to.kind)
	}

	kr, ok := r.kinds[from.kind]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no registry", ErrNoConversionPath, from.kind)
	}

	kr.mu.RLock()
	registered := kr.has(from) && kr.has(to)
	cached, hit := kr.cache[unitPair{from: from, to: to}]
	kr.mu.RUnlock()

	if !registered {
		return 0, fmt.Errorf("%w: %s to %s, unit is not registered", ErrNoConversionPath, from, to)
	}
	if from == to {
		return 1, nil
	}

	r.observe(from.kind, hit)
	if hit {
		return cached, nil
	}

	kr.mu.RLock()
	rate, found := kr.resolve(from, to)
	kr.mu.RUnlock()

	if !found {
		return 0, fmt.Errorf("%w: %s to %s", ErrNoConversionPath, from, to)
	}

	kr.mu.Lock()
	kr.cache[unitPair{from: from, to: to}] = rate
	if _, exists := kr.cache[unitPair{from: to, to: from}]; !exists {
		kr.cache[unitPair{from: to, to: from}] = 1 / rate
	}
	kr.mu.Unlock()

	return rate, nil
}

// CachedRates returns the number of memoised conversion rates per kind.
func (r *Registry) CachedRates() map[Kind]int {
	sizes := make(map[Kind]int, len(r.kinds))
	for kind, kr := range r.kinds {
		kr.mu.RLock()
		sizes[kind] = len(kr.cache)
		kr.mu.RUnlock()
	}
	return sizes
}

// Verify checks the conversion graph of every kind:
//   - every unit can be converted to every other unit of its kind
//   - every derived unit has a direct edge to a primitive
//   - where a pair resolves both through a shared neighbour and through its
//     primitives, both routes agree
//
// Disagreeing routes mean Rate depends on resolution order, which is a
// configuration bug. All findings are joined into one error wrapping
// ErrRegistryConfiguration.
func (r *Registry) Verify() error {
	var problems []error
	for _, kind := range Kinds() {
		kr := r.kinds[kind]
		kr.mu.RLock()
		problems = append(problems, kr.verify()...)
		kr.mu.RUnlock()
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrRegistryConfiguration, errors.Join(problems...))
}

func (r *Registry) observe(kind Kind, cached bool) {
	if r.observer != nil {
		r.observer.ObserveRateLookup(kind, cached)
	}
}

// resolve runs steps 3-6 of Rate. The caller holds at least a read lock.
func (kr *kindRegistry) resolve(from, to Unit) (float64, bool) {
	if rate, ok := kr.conversions[from][to]; ok {
		return rate, true
	}
	if rate, ok := kr.viaSharedNeighbour(from, to); ok {
		return rate, true
	}
	if rate, ok := kr.viaPrimitives(from, to); ok {
		return rate, true
	}
	return kr.search(from, to)
}

func (kr *kindRegistry) viaSharedNeighbour(from, to Unit) (float64, bool) {
	for _, x := range kr.neighbours(from) {
		if xTo, ok := kr.conversions[x][to]; ok {
			return kr.conversions[from][x] * xTo, true
		}
	}
	return 0, false
}

func (kr *kindRegistry) viaPrimitives(from, to Unit) (float64, bool) {
	p1, fromToP1, ok := kr.primitiveOf(from)
	if !ok {
		return 0, false
	}
	p2, toToP2, ok := kr.primitiveOf(to)
	if !ok {
		return 0, false
	}

	bridge, ok := kr.search(p1, p2)
	if !ok {
		return 0, false
	}
	return fromToP1 * bridge / toToP2, true
}

// primitiveOf returns u itself when it is primitive, else its lowest named
// directly connected primitive, together with rate(u, primitive).
func (kr *kindRegistry) primitiveOf(u Unit) (Unit, float64, bool) {
	if kr.isPrimitive(u) {
		return u, 1, true
	}
	for _, n := range kr.neighbours(u) {
		if kr.isPrimitive(n) {
			return n, kr.conversions[u][n], true
		}
	}
	return Unit{}, 0, false
}

// search is a breadth-first search over the conversion graph. Each unit is visited
// at most once, so the walk is bounded by the number of registered units.
func (kr *kindRegistry) search(from, to Unit) (float64, bool) {
	if from == to {
		return 1, true
	}

	type step struct {
		unit Unit
		rate float64
	}

	visited := map[Unit]struct{}{from: {}}
	queue := []step{{unit: from, rate: 1}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range kr.neighbours(current.unit) {
			if _, seen := visited[next]; seen {
				continue
			}
			rate := current.rate * kr.conversions[current.unit][next]
			if next == to {
				return rate, true
			}
			visited[next] = struct{}{}
			queue = append(queue, step{unit: next, rate: rate})
		}
	}
	return 0, false
}

// neighbours returns the directly connected units of u sorted by name,
// which keeps every resolution step deterministic.
func (kr *kindRegistry) neighbours(u Unit) []Unit {
	edges := kr.conversions[u]
	units := make([]Unit, 0, len(edges))
	for n := range edges {
		units = append(units, n)
	}
	slices.SortFunc(units, func(a, b Unit) int {
		return strings.Compare(a.name, b.name)
	})
	return units
}

func (kr *kindRegistry) verify() []error {
	var problems []error
	for _, u := range kr.units {
		if _, _, ok := kr.primitiveOf(u); !ok {
			problems = append(problems, fmt.Errorf("%s has no direct edge to a primitive", u))
		}
	}

	for i, a := range kr.units {
		for _, b := range kr.units[i+1:] {
			if _, ok := kr.search(a, b); !ok {
				problems = append(problems, fmt.Errorf("%s and %s are not connected", a, b))
				continue
			}
			shared, sharedOK := kr.viaSharedNeighbour(a, b)
			bridged, bridgedOK := kr.viaPrimitives(a, b)
			if sharedOK && bridgedOK && !approxEqual(shared, bridged) {
				problems = append(problems, fmt.Errorf(
					"%s to %s is ambiguous: %v via shared neighbour, %v via primitives", a, b, shared, bridged))
			}
		}
	}
	return problems
}

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= rateTolerance*math.Max(math.Abs(a), math.Abs(b))
}
