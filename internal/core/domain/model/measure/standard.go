package measure

import "errors"

const (
	// GramsPerOunce bridges the metric and imperial mass systems.
	GramsPerOunce = 28.349523125

	// MetresPerInch bridges the metric and imperial length systems.
	MetresPerInch = 0.0254
)

// NewStandardRegistry builds the registry used by the service: mass and length,
// each with a metric and an imperial system bridged at their primitives.
//
//	mass:   gram (primitive), milligram, kilogram, tonne
//	        ounce (primitive), pound, stone, short_ton, long_ton
//	length: metre (primitive), millimetre, centimetre, kilometre
//	        inch (primitive), foot, yard, mile
//
// The returned registry has passed Verify.
func NewStandardRegistry(opts ...RegistryOption) (*Registry, error) {
	r := NewRegistry(opts...)

	if err := errors.Join(
		r.RegisterPrimitive(Gram, "g", "grams", "gramme", "grammes"),
		r.RegisterDerived(Milligram, 0.001, Gram, "mg", "milligrams"),
		r.RegisterDerived(Kilogram, 1000, Gram, "kg", "kgs", "kilograms", "kilo", "kilos"),
		r.RegisterDerived(Tonne, 1000, Kilogram, "t", "tonnes", "metric_ton", "metric_tons"),
		r.RegisterPrimitive(Ounce, "oz", "ounces"),
		r.RegisterDerived(Pound, 16, Ounce, "lb", "lbs", "pounds"),
		r.RegisterDerived(Stone, 14, Pound, "st", "stones"),
		r.RegisterDerived(ShortTon, 2000, Pound, "ton", "tons", "short_tons"),
		r.RegisterDerived(LongTon, 2240, Pound, "long_tons", "imperial_ton"),
		r.RegisterEquivalence(Ounce, GramsPerOunce, Gram),

		r.RegisterPrimitive(Metre, "m", "metres", "meter", "meters"),
		r.RegisterDerived(Millimetre, 0.001, Metre, "mm", "millimetres", "millimeter", "millimeters"),
		r.RegisterDerived(Centimetre, 0.01, Metre, "cm", "centimetres", "centimeter", "centimeters"),
		r.RegisterDerived(Kilometre, 1000, Metre, "km", "kilometres", "kilometer", "kilometers"),
		r.RegisterPrimitive(Inch, "in", "inches"),
		r.RegisterDerived(Foot, 12, Inch, "ft", "feet"),
		r.RegisterDerived(Yard, 3, Foot, "yd", "yards"),
		r.RegisterDerived(Mile, 1760, Yard, "mi", "miles"),
		r.RegisterEquivalence(Inch, MetresPerInch, Metre),
	); err != nil {
		return nil, err
	}

	if err := r.Verify(); err != nil {
		return nil, err
	}
	return r, nil
}
