package measure

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Unit is a named unit of measurement scoped to exactly one Kind and one System.
// Units are comparable values and can be used as map keys. Two units are
// convertible only when they share a Kind and both are registered in the same Registry.
type Unit struct {
	kind   Kind
	system System
	name   string
}

// Standard units. They are plain values; NewStandardRegistry wires the
// conversions between them.
var (
	Milligram = Unit{kind: Mass, system: Metric, name: "milligram"}
	Gram      = Unit{kind: Mass, system: Metric, name: "gram"}
	Kilogram  = Unit{kind: Mass, system: Metric, name: "kilogram"}
	Tonne     = Unit{kind: Mass, system: Metric, name: "tonne"}
	Ounce     = Unit{kind: Mass, system: Imperial, name: "ounce"}
	Pound     = Unit{kind: Mass, system: Imperial, name: "pound"}
	Stone     = Unit{kind: Mass, system: Imperial, name: "stone"}
	ShortTon  = Unit{kind: Mass, system: Imperial, name: "short_ton"}
	LongTon   = Unit{kind: Mass, system: Imperial, name: "long_ton"}

	Millimetre = Unit{kind: Length, system: Metric, name: "millimetre"}
	Centimetre = Unit{kind: Length, system: Metric, name: "centimetre"}
	Metre      = Unit{kind: Length, system: Metric, name: "metre"}
	Kilometre  = Unit{kind: Length, system: Metric, name: "kilometre"}
	Inch       = Unit{kind: Length, system: Imperial, name: "inch"}
	Foot       = Unit{kind: Length, system: Imperial, name: "foot"}
	Yard       = Unit{kind: Length, system: Imperial, name: "yard"}
	Mile       = Unit{kind: Length, system: Imperial, name: "mile"}
)

// NewUnit creates a custom unit. The name is normalised the same way Registry.Lookup
// normalises queries, so "Nautical Mile" becomes "nautical_mile".
//
// Returns:
//   - the Unit
//   - a joined validation error if kind, system or name is invalid
func NewUnit(kind Kind, system System, name string) (Unit, error) {
	normalised := normaliseName(name)

	var nameErr error
	if normalised == "" {
		nameErr = errs.NewValueIsRequiredError("unit name")
	}

	if err := errors.Join(kind.Validate(), system.Validate(), nameErr); err != nil {
		return Unit{}, err
	}

	return Unit{kind: kind, system: system, name: normalised}, nil
}

// Kind returns the kind the unit measures.
func (u Unit) Kind() Kind {
	return u.kind
}

// System returns the system the unit belongs to.
func (u Unit) System() System {
	return u.system
}

// Name returns the canonical unit name.
func (u Unit) Name() string {
	return u.name
}

// IsZero reports whether u is the zero Unit.
func (u Unit) IsZero() bool {
	return u == Unit{}
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	if u.IsZero() {
		return "<no unit>"
	}
	return u.name
}

// Validate checks that u was created by NewUnit or is one of the standard units.
func (u Unit) Validate() error {
	if u.name == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	if err := errors.Join(u.kind.Validate(), u.system.Validate()); err != nil {
		return fmt.Errorf("unit %s: %w", u.name, err)
	}
	return nil
}

func normaliseName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	}), "_")
}
