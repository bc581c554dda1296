package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/ports"
)

// MeasurePackageQueryHandler builds a parcel.Package from a description and reads
// its measurements.
type MeasurePackageQueryHandler struct {
	catalog ports.UnitCatalog
}

// NewMeasurePackageQueryHandler creates a handler backed by catalog.
func NewMeasurePackageQueryHandler(catalog ports.UnitCatalog) MeasurePackageQueryHandler {
	return MeasurePackageQueryHandler{catalog: catalog}
}

// Handle measures the described package.
//
// Returns:
//   - the measurements
//   - errs.ObjectNotFoundError for an unknown unit name
//   - package validation errors for wrong kinds or an unreadable value
func (h MeasurePackageQueryHandler) Handle(
	_ context.Context,
	query MeasurePackageQuery,
) (MeasurePackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return MeasurePackageQueryResponse{}, err
	}
	desc := query.Description()

	weight, err := h.input(desc.Weight)
	if err != nil {
		return MeasurePackageQueryResponse{}, err
	}
	dimensions := make([]parcel.Input, 0, len(desc.Dimensions))
	for _, d := range desc.Dimensions {
		in, inputErr := h.input(d)
		if inputErr != nil {
			return MeasurePackageQueryResponse{}, inputErr
		}
		dimensions = append(dimensions, in)
	}

	opts := []parcel.Option{parcel.WithValue(desc.Value), parcel.WithCurrency(desc.Currency)}
	if system, ok := query.System(); ok {
		opts = append(opts, parcel.WithUnits(system))
	}
	if desc.Cylinder {
		opts = append(opts, parcel.Cylinder())
	}

	pkg, err := parcel.NewPackage(h.catalog, weight, dimensions, opts...)
	if err != nil {
		return MeasurePackageQueryResponse{}, err
	}

	return readPackage(pkg)
}

func (h MeasurePackageQueryHandler) input(a Amount) (parcel.Input, error) {
	if a.Unit == "" {
		return parcel.Number(a.Value), nil
	}

	unit, err := h.catalog.Lookup(a.Unit)
	if err != nil {
		return parcel.Input{}, err
	}
	q, err := measure.NewQuantity(h.catalog, a.Value, unit)
	if err != nil {
		return parcel.Input{}, err
	}
	return parcel.Measured(q), nil
}

func readPackage(pkg parcel.Package) (MeasurePackageQueryResponse, error) {
	res := MeasurePackageQueryResponse{
		UnitSystem:      pkg.UnitSystem().String(),
		WeightSystem:    pkg.WeightSystem().String(),
		DimensionSystem: pkg.DimensionSystem().String(),
		Currency:        pkg.Currency(),
		Cylinder:        pkg.IsCylinder(),
	}
	if cents, ok := pkg.Value(); ok {
		res.Value = &cents
	}

	var errList []error
	weight := func(t parcel.WeightType) WeightReading {
		w, err := pkg.Weight(t)
		errList = append(errList, err)
		grams, err := pkg.Grams(t)
		errList = append(errList, err)
		ounces, err := pkg.Ounces(t)
		errList = append(errList, err)
		return WeightReading{Amount: w.Amount(), Unit: w.Unit().Name(), Grams: grams, Ounces: ounces}
	}
	length := func(m parcel.Measure) LengthReading {
		cm, err := pkg.Centimetres(m)
		errList = append(errList, err)
		in, err := pkg.Inches(m)
		errList = append(errList, err)
		return LengthReading{Centimetres: cm, Inches: in}
	}

	res.Actual = weight(parcel.Actual)
	res.Volumetric = weight(parcel.Volumetric)
	res.Billable = weight(parcel.Billable)
	res.Dimensions = [3]LengthReading{
		length(parcel.MinDimension),
		length(parcel.MidDimension),
		length(parcel.MaxDimension),
	}
	res.Girth = length(parcel.Girth)
	res.Volume = length(parcel.Volume)
	res.BoxVolume = length(parcel.BoxVolume)

	if err := errors.Join(errList...); err != nil {
		return MeasurePackageQueryResponse{}, err
	}
	return res, nil
}
