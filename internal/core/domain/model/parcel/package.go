package parcel

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// VolumetricDivisor converts a box volume in cubic centimetres into grams of
// volumetric weight.
const VolumetricDivisor = 6.0

var (
	// ErrPackageIsNotConstructed is returned when a Package was not created via NewPackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	// ErrTooManyDimensions is returned when more than three dimensions are supplied.
	ErrTooManyDimensions = errors.New("a package has at most three dimensions")
)

// WeightType selects which weight Package.Weight returns.
type WeightType int

const (
	// Actual is the weight the package was created with.
	Actual WeightType = iota

	// Volumetric is the box volume in cubic centimetres divided by VolumetricDivisor, in grams,
	// or in ounces when the weight is imperial. Dimensional is the same weight.
	Volumetric

	// Billable is the greater of Actual and Volumetric.
	Billable
)

// Dimensional is an alias of Volumetric.
const Dimensional = Volumetric

// String implements fmt.Stringer.
func (t WeightType) String() string {
	switch t {
	case Actual:
		return "actual"
	case Volumetric:
		return "volumetric"
	case Billable:
		return "billable"
	default:
		return "unknown"
	}
}

// Package is a physical parcel: a weight, three dimensions sorted ascending and
// shipping attributes. Package is an immutable value; every derived measurement
// is computed once in NewPackage.
//
// Invariants:
//   - there are always exactly three dimensions, sorted ascending
//   - weight and dimensions are non-negative
//   - the volumetric weight is expressed in grams, or ounces for imperial weights
type Package struct {
	weight     measure.Quantity
	dimensions [3]measure.Quantity

	system          measure.System
	weightSystem    measure.System
	dimensionSystem measure.System

	volumetric measure.Quantity
	billable   measure.Quantity

	inches      [3]float64
	centimetres [3]float64

	value    *int64
	currency string

	cylinder   bool
	gift       bool
	oversized  bool
	unpackaged bool

	guard guard.ConstructorGuard
}

// NewPackage creates a package from a weight and up to three dimensions.
//
// Bare numbers are read as grams and centimetres for metric packages, ounces and
// inches for imperial ones. The package is imperial when requested with WithUnits,
// or when its weight or all of its dimensions are imperial quantities.
//
// Dimensions are sorted ascending and padded to three:
//   - none gives three zero lengths in the default dimension unit
//   - one gives three equal dimensions
//   - two duplicates the smallest
//
// Parameters:
//   - conv: converter for bare numbers, usually the process registry
//   - weight: the actual weight
//   - dimensions: zero to three lengths
//   - opts: units, value, currency and flags
//
// Returns:
//   - the Package
//   - a joined validation error for wrong kinds, negative amounts, more than three
//     dimensions, an unreadable value or a failed conversion
//
// Example:
//
//	pkg, err := parcel.NewPackage(registry,
//	    parcel.Measured(measure.MustNewQuantity(registry, 120, measure.Ounce)),
//	    parcel.Numbers(15, 10, 4.5),
//	    parcel.WithUnits(measure.Imperial),
//	    parcel.WithValue("49.99"),
//	    parcel.WithCurrency("USD"),
//	)
func NewPackage(conv measure.Converter, weight Input, dimensions []Input, opts ...Option) (Package, error) {
	if conv == nil {
		return Package{}, errs.NewValueIsRequiredError("converter")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	p := Package{
		cylinder:   o.cylinder,
		gift:       o.gift,
		oversized:  o.oversized,
		unpackaged: o.unpackaged,
		guard:      guard.NewConstructorGuard(),
	}
	p.resolveSystems(weight, dimensions, o)

	if err := errors.Join(
		p.setWeight(conv, weight),
		p.setDimensions(conv, dimensions),
		p.setValue(o.value, o.currency),
	); err != nil {
		return Package{}, err
	}

	if err := p.deriveWeights(conv); err != nil {
		return Package{}, err
	}

	return p, nil
}

// Validate ensures the package was created through NewPackage.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// UnitSystem returns the system the package was resolved to before per-side overrides.
func (p Package) UnitSystem() measure.System {
	return p.system
}

// WeightSystem returns the unit system of the weight.
func (p Package) WeightSystem() measure.System {
	return p.weightSystem
}

// DimensionSystem returns the unit system of the dimensions.
func (p Package) DimensionSystem() measure.System {
	return p.dimensionSystem
}

// Dimensions returns the three dimensions sorted ascending.
func (p Package) Dimensions() [3]measure.Quantity {
	return p.dimensions
}

// Weight returns the actual, volumetric or billable weight.
func (p Package) Weight(t WeightType) (measure.Quantity, error) {
	switch t {
	case Actual:
		return p.weight, nil
	case Volumetric:
		return p.volumetric, nil
	case Billable:
		return p.billable, nil
	default:
		return measure.Quantity{}, errs.NewValueIsOutOfRangeError("weight type", int(t), int(Actual), int(Billable))
	}
}

// ActualWeight returns the weight the package was created with.
func (p Package) ActualWeight() measure.Quantity {
	return p.weight
}

// VolumetricWeight returns the weight derived from the box volume.
func (p Package) VolumetricWeight() measure.Quantity {
	return p.volumetric
}

// BillableWeight returns the greater of the actual and volumetric weights.
func (p Package) BillableWeight() measure.Quantity {
	return p.billable
}

// Grams returns the selected weight in grams.
func (p Package) Grams(t WeightType) (float64, error) {
	return p.weightIn(t, measure.Gram)
}

// Ounces returns the selected weight in ounces.
func (p Package) Ounces(t WeightType) (float64, error) {
	return p.weightIn(t, measure.Ounce)
}

// Pounds returns the selected weight in pounds.
func (p Package) Pounds(t WeightType) (float64, error) {
	return p.weightIn(t, measure.Pound)
}

// Kilograms returns the selected weight in kilograms.
func (p Package) Kilograms(t WeightType) (float64, error) {
	return p.weightIn(t, measure.Kilogram)
}

// Inches returns a dimension or a derived measure in inches (cubic inches for volumes).
func (p Package) Inches(m Measure) (float64, error) {
	return p.measureOf(m, p.inches)
}

// Centimetres returns a dimension or a derived measure in centimetres (cubic centimetres for volumes).
func (p Package) Centimetres(m Measure) (float64, error) {
	return p.measureOf(m, p.centimetres)
}

// AllInches returns the three dimensions in inches, sorted ascending.
func (p Package) AllInches() [3]float64 {
	return p.inches
}

// AllCentimetres returns the three dimensions in centimetres, sorted ascending.
func (p Package) AllCentimetres() [3]float64 {
	return p.centimetres
}

// Value returns the declared value in cents and whether one was given.
func (p Package) Value() (int64, bool) {
	if p.value == nil {
		return 0, false
	}
	return *p.value, true
}

// Currency returns the currency code of the declared value, empty when unknown.
func (p Package) Currency() string {
	return p.currency
}

// IsCylinder reports whether girth and volume use the cylinder formulas.
func (p Package) IsCylinder() bool {
	return p.cylinder
}

// IsGift reports whether the package is a gift.
func (p Package) IsGift() bool {
	return p.gift
}

// IsOversized reports whether the package is oversized.
func (p Package) IsOversized() bool {
	return p.oversized
}

// IsUnpackaged reports whether the item ships without packaging.
func (p Package) IsUnpackaged() bool {
	return p.unpackaged
}

func (p *Package) resolveSystems(weight Input, dimensions []Input, o options) {
	p.system = measure.Metric
	switch {
	case o.system != nil:
		p.system = *o.system
	case weight.isImperial():
		p.system = measure.Imperial
	case len(dimensions) > 0 && allImperial(dimensions):
		p.system = measure.Imperial
	}

	p.weightSystem = p.system
	if o.weightSystem != nil {
		p.weightSystem = *o.weightSystem
	}

	p.dimensionSystem = p.system
	if o.dimensionSystem != nil {
		p.dimensionSystem = *o.dimensionSystem
	}
}

func (p *Package) setWeight(conv measure.Converter, weight Input) error {
	defaultUnit := measure.Gram
	if p.weightSystem == measure.Imperial {
		defaultUnit = measure.Ounce
	}

	q, err := weight.resolve(conv, defaultUnit)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	if q.Kind() != measure.Mass {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is not a mass", q))
	}
	if q.Amount() < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is negative", q))
	}

	p.weight = q
	return nil
}

func (p *Package) setDimensions(conv measure.Converter, dimensions []Input) error {
	if len(dimensions) > 3 {
		return errs.NewValueIsOutOfRangeErrorWithCause("dimensions", len(dimensions), 0, 3, ErrTooManyDimensions)
	}

	defaultUnit := measure.Centimetre
	if p.dimensionSystem == measure.Imperial {
		defaultUnit = measure.Inch
	}

	type dimension struct {
		quantity    measure.Quantity
		centimetres float64
		inches      float64
	}

	sorted := make([]dimension, 0, 3)
	for i, in := range dimensions {
		q, err := in.resolve(conv, defaultUnit)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("dimension %d", i), err)
		}
		if q.Kind() != measure.Length {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("dimension %d", i), fmt.Errorf("%s is not a length", q))
		}
		if q.Amount() < 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("dimension %d", i), fmt.Errorf("%s is negative", q))
		}

		cm, err := q.ConvertTo(measure.Centimetre)
		if err != nil {
			return err
		}
		inch, err := q.ConvertTo(measure.Inch)
		if err != nil {
			return err
		}
		sorted = append(sorted, dimension{quantity: q, centimetres: cm.Amount(), inches: inch.Amount()})
	}

	if len(sorted) == 0 {
		zero, err := measure.NewQuantity(conv, 0, defaultUnit)
		if err != nil {
			return err
		}
		sorted = append(sorted, dimension{quantity: zero})
	}

	slices.SortStableFunc(sorted, func(a, b dimension) int {
		return cmp.Compare(a.centimetres, b.centimetres)
	})
	for len(sorted) < 3 {
		sorted = slices.Insert(sorted, 0, sorted[0])
	}

	for i, d := range sorted {
		p.dimensions[i] = d.quantity
		p.centimetres[i] = d.centimetres
		p.inches[i] = d.inches
	}
	return nil
}

func (p *Package) setValue(value any, currency string) error {
	cents, err := CentsFrom(value)
	if err != nil {
		return err
	}
	p.value = cents

	p.currency = currency
	if p.currency == "" {
		if carrier, ok := value.(CurrencyCarrier); ok {
			p.currency = carrier.Currency()
		}
	}
	return nil
}

func (p *Package) deriveWeights(conv measure.Converter) error {
	volumetric, err := measure.NewQuantity(conv, p.centimetres[0]*p.centimetres[1]*p.centimetres[2]/VolumetricDivisor, measure.Gram)
	if err != nil {
		return err
	}
	if p.weightSystem == measure.Imperial {
		if volumetric, err = volumetric.ConvertTo(measure.Ounce); err != nil {
			return err
		}
	}
	p.volumetric = volumetric

	p.billable, err = measure.Max(p.weight, p.volumetric)
	return err
}

func (p Package) weightIn(t WeightType, unit measure.Unit) (float64, error) {
	w, err := p.Weight(t)
	if err != nil {
		return 0, err
	}
	converted, err := w.ConvertTo(unit)
	if err != nil {
		return 0, err
	}
	return converted.Amount(), nil
}

func (p Package) measureOf(m Measure, dims [3]float64) (float64, error) {
	switch m {
	case MinDimension, MidDimension, MaxDimension:
		return dims[m], nil
	case Girth:
		if p.cylinder {
			return math.Pi * (dims[0] + dims[1]) / 2, nil
		}
		return 2*dims[0] + 2*dims[1], nil
	case Volume:
		if p.cylinder {
			return math.Pow(math.Pi*(dims[0]+dims[1])/4, 2) * dims[2], nil
		}
		return dims[0] * dims[1] * dims[2], nil
	case BoxVolume:
		return dims[0] * dims[1] * dims[2], nil
	default:
		return 0, m.Validate()
	}
}

func allImperial(inputs []Input) bool {
	for _, in := range inputs {
		if !in.isImperial() {
			return false
		}
	}
	return true
}
