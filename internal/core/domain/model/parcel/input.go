package parcel

import (
	"strconv"

	"shipping/internal/core/domain/model/measure"
)

// Input is a weight or dimension handed to NewPackage: either a bare number,
// interpreted in the package's default unit, or a quantity that keeps its own unit.
type Input struct {
	number   float64
	quantity measure.Quantity
	measured bool
}

// Number wraps a bare amount. It is read as grams or centimetres for metric
// packages and as ounces or inches for imperial ones.
func Number(n float64) Input {
	return Input{number: n}
}

// Measured wraps a quantity that carries its own unit.
func Measured(q measure.Quantity) Input {
	return Input{quantity: q, measured: true}
}

// Numbers wraps several bare amounts.
func Numbers(ns ...float64) []Input {
	inputs := make([]Input, len(ns))
	for i, n := range ns {
		inputs[i] = Number(n)
	}
	return inputs
}

// IsMeasured reports whether the input carries a unit.
func (in Input) IsMeasured() bool {
	return in.measured
}

func (in Input) isImperial() bool {
	return in.measured && in.quantity.System() == measure.Imperial
}

// resolve reads the input against the default unit of its side of the package.
func (in Input) resolve(conv measure.Converter, defaultUnit measure.Unit) (measure.Quantity, error) {
	if in.measured {
		if err := in.quantity.Validate(); err != nil {
			return measure.Quantity{}, err
		}
		return in.quantity, nil
	}
	return measure.NewQuantity(conv, in.number, defaultUnit)
}

func (in Input) String() string {
	if in.measured {
		return in.quantity.String()
	}
	return strconv.FormatFloat(in.number, 'g', -1, 64)
}
