package measure

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Kind is the category of a measurement. Every Kind owns its own unit registry
// and units of different kinds are never convertible into each other.
type Kind int

const (
	// UnknownKind catches uninitialized Kind values.
	UnknownKind Kind = iota

	// Mass measures weight (grams, ounces, ...).
	Mass

	// Length measures distance (metres, inches, ...).
	Length
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Mass:        "mass",
		Length:      "length",
	}
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Mass, Length}
}

// ParseKind resolves a kind name such as "mass" or "Length".
//
// Returns:
//   - the matching Kind
//   - errs.ValueIsInvalidError if the name is not a known kind
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if getKindStrings()[k] == name {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known kind", s))
}

// Validate checks that k is Mass or Length.
func (k Kind) Validate() error {
	if k != Mass && k != Length {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// System groups the units of a kind that belong together, such as metric or imperial.
type System int

const (
	// UnknownSystem catches uninitialized System values.
	UnknownSystem System = iota

	// Metric covers grams, metres and their decimal multiples.
	Metric

	// Imperial covers ounces, pounds, inches, feet and friends.
	Imperial
)

func getSystemStrings() map[System]string {
	return map[System]string{
		UnknownSystem: "unknown",
		Metric:        "metric",
		Imperial:      "imperial",
	}
}

// Systems returns every valid System in declaration order.
func Systems() []System {
	return []System{Metric, Imperial}
}

// ParseSystem resolves a system name such as "metric" or "imperial".
func ParseSystem(s string) (System, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, sys := range Systems() {
		if getSystemStrings()[sys] == name {
			return sys, nil
		}
	}
	return UnknownSystem, errs.NewValueIsInvalidErrorWithCause("system", fmt.Errorf("%q is not a known system", s))
}

// Validate checks that s is Metric or Imperial.
func (s System) Validate() error {
	if s != Metric && s != Imperial {
		return errs.NewValueIsInvalidErrorWithCause("system", fmt.Errorf("%d is not a valid system", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s System) String() string {
	if str, ok := getSystemStrings()[s]; ok {
		return str
	}
	return "unknown"
}
