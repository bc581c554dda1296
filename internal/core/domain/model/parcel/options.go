package parcel

import "shipping/internal/core/domain/model/measure"

// Option configures a Package built by NewPackage.
type Option func(*options)

type options struct {
	system          *measure.System
	weightSystem    *measure.System
	dimensionSystem *measure.System

	value    any
	currency string

	cylinder   bool
	gift       bool
	oversized  bool
	unpackaged bool
}

// WithUnits forces the unit system of the whole package. Without it the package is
// imperial when its weight, or all of its dimensions, are imperial quantities.
func WithUnits(system measure.System) Option {
	return func(o *options) {
		o.system = &system
	}
}

// WithWeightUnits sets the unit system of the weight alone, taking precedence over WithUnits.
func WithWeightUnits(system measure.System) Option {
	return func(o *options) {
		o.weightSystem = &system
	}
}

// WithDimensionUnits sets the unit system of the dimensions alone, taking precedence over WithUnits.
func WithDimensionUnits(system measure.System) Option {
	return func(o *options) {
		o.dimensionSystem = &system
	}
}

// WithValue sets the declared value. See CentsFrom for the accepted forms.
func WithValue(value any) Option {
	return func(o *options) {
		o.value = value
	}
}

// WithCurrency sets the ISO currency code of the declared value.
func WithCurrency(code string) Option {
	return func(o *options) {
		o.currency = code
	}
}

// Cylinder marks the package as a cylinder, which changes its girth and volume.
func Cylinder() Option {
	return func(o *options) {
		o.cylinder = true
	}
}

// Tube is an alias of Cylinder.
func Tube() Option {
	return Cylinder()
}

// Gift marks the package as a gift.
func Gift() Option {
	return func(o *options) {
		o.gift = true
	}
}

// Oversized marks the package as oversized.
func Oversized() Option {
	return func(o *options) {
		o.oversized = true
	}
}

// Unpackaged marks the item as shipped without packaging.
func Unpackaged() Option {
	return func(o *options) {
		o.unpackaged = true
	}
}
