package queries

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrMeasurePackageQueryIsNotConstructed = errors.New(
		"MeasurePackageQuery must be created via NewMeasurePackageQuery constructor",
	)
)

// Amount is a number with an optional unit name. Without a unit the package's
// default unit applies.
type Amount struct {
	Value float64
	Unit  string
}

// PackageDescription is the raw description of a package to measure.
type PackageDescription struct {
	Weight     Amount
	Dimensions []Amount
	// Units forces "metric" or "imperial"; empty lets the package decide.
	Units    string
	Value    any
	Currency string
	Cylinder bool
}

// MeasurePackageQuery computes the weights and measurements of a described package.
//
// Example:
//
//	query, err := NewMeasurePackageQuery(PackageDescription{
//	    Weight:     Amount{Value: 120, Unit: "oz"},
//	    Dimensions: []Amount{{Value: 15}, {Value: 10}, {Value: 4.5}},
//	    Units:      "imperial",
//	})
//	res, err := handler.Handle(ctx, query)
//	fmt.Println(res.Billable.Ounces)
type MeasurePackageQuery struct {
	description PackageDescription
	system      *measure.System

	guard guard.ConstructorGuard
}

// NewMeasurePackageQuery validates a description.
// Unit names are resolved by the handler; here only their shape is checked.
func NewMeasurePackageQuery(desc PackageDescription) (MeasurePackageQuery, error) {
	q := MeasurePackageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setWeight(desc.Weight),
		q.setDimensions(desc.Dimensions),
		q.setUnits(desc.Units),
	); err != nil {
		return MeasurePackageQuery{}, err
	}

	q.description.Value = desc.Value
	q.description.Currency = strings.ToUpper(strings.TrimSpace(desc.Currency))
	q.description.Cylinder = desc.Cylinder
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q MeasurePackageQuery) Validate() error {
	return q.guard.Validate(ErrMeasurePackageQueryIsNotConstructed)
}

// Description returns a copy of the validated description.
func (q MeasurePackageQuery) Description() PackageDescription {
	desc := q.description
	desc.Dimensions = slices.Clone(q.description.Dimensions)
	return desc
}

// System returns the forced unit system, if any.
func (q MeasurePackageQuery) System() (measure.System, bool) {
	if q.system == nil {
		return measure.UnknownSystem, false
	}
	return *q.system, true
}

func (q *MeasurePackageQuery) setWeight(weight Amount) error {
	if err := checkAmount("weight", weight); err != nil {
		return err
	}

	q.description.Weight = Amount{Value: weight.Value, Unit: strings.TrimSpace(weight.Unit)}
	return nil
}

func (q *MeasurePackageQuery) setDimensions(dimensions []Amount) error {
	if len(dimensions) > 3 {
		return errs.NewValueIsOutOfRangeErrorWithCause("dimensions", len(dimensions), 0, 3, parcel.ErrTooManyDimensions)
	}

	cleaned := make([]Amount, 0, len(dimensions))
	for i, d := range dimensions {
		if err := checkAmount(fmt.Sprintf("dimension %d", i), d); err != nil {
			return err
		}
		cleaned = append(cleaned, Amount{Value: d.Value, Unit: strings.TrimSpace(d.Unit)})
	}

	q.description.Dimensions = cleaned
	return nil
}

func (q *MeasurePackageQuery) setUnits(units string) error {
	if strings.TrimSpace(units) == "" {
		return nil
	}

	system, err := measure.ParseSystem(units)
	if err != nil {
		return err
	}

	q.system = &system
	q.description.Units = system.String()
	return nil
}

func checkAmount(name string, a Amount) error {
	if math.IsNaN(a.Value) || math.IsInf(a.Value, 0) || a.Value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a valid amount", a.Value))
	}
	return nil
}

// MeasurePackageQueryResponse is every measurement of a package.
type MeasurePackageQueryResponse struct {
	UnitSystem      string
	WeightSystem    string
	DimensionSystem string

	Actual     WeightReading
	Volumetric WeightReading
	Billable   WeightReading

	Dimensions [3]LengthReading
	Girth      LengthReading
	Volume     LengthReading
	BoxVolume  LengthReading

	Value    *int64
	Currency string
	Cylinder bool
}

// WeightReading is a weight in its own unit and in grams and ounces.
type WeightReading struct {
	Amount float64
	Unit   string
	Grams  float64
	Ounces float64
}

// LengthReading is a measure in centimetres and inches (cubic for volumes).
type LengthReading struct {
	Centimetres float64
	Inches      float64
}
