package parcel

import (
	"fmt"
	"strconv"
	"strings"

	"shipping/internal/pkg/errs"
)

// Measure selects what Inches and Centimetres return. Dimensions are sorted
// ascending, so index 0 is the smallest one.
type Measure int

const (
	// MinDimension is the smallest dimension (aliases z, min, height, depth, high, deep).
	MinDimension Measure = iota

	// MidDimension is the middle dimension (aliases y, mid, width, wide).
	MidDimension

	// MaxDimension is the largest dimension (aliases x, max, length, long).
	MaxDimension

	// Girth is the distance around the two smaller dimensions (aliases around, circumference).
	Girth

	// Volume is the box volume, or the cylinder volume for cylinders.
	Volume

	// BoxVolume is the product of the three dimensions.
	BoxVolume
)

func getMeasureAliases() map[string]Measure {
	return map[string]Measure{
		"x": MaxDimension, "max": MaxDimension, "length": MaxDimension, "long": MaxDimension,
		"y": MidDimension, "mid": MidDimension, "width": MidDimension, "wide": MidDimension,
		"z": MinDimension, "min": MinDimension, "height": MinDimension, "depth": MinDimension,
		"high": MinDimension, "deep": MinDimension,
		"girth": Girth, "around": Girth, "circumference": Girth,
		"volume":     Volume,
		"box_volume": BoxVolume,
	}
}

// DimensionIndex selects a dimension by its position in the sorted dimensions.
//
// Returns:
//   - the Measure for index 0, 1 or 2
//   - errs.ValueIsOutOfRangeError for any other index
func DimensionIndex(i int) (Measure, error) {
	if i < 0 || i > 2 {
		return 0, errs.NewValueIsOutOfRangeError("dimension index", i, 0, 2)
	}
	return Measure(i), nil
}

// ParseMeasure resolves an axis alias such as "length" or "girth", or a dimension index.
func ParseMeasure(s string) (Measure, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if m, ok := getMeasureAliases()[name]; ok {
		return m, nil
	}
	if i, err := strconv.Atoi(name); err == nil {
		return DimensionIndex(i)
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("measure", fmt.Errorf("%q is not a known measure", s))
}

// Validate checks that m is one of the declared measures.
func (m Measure) Validate() error {
	if m < MinDimension || m > BoxVolume {
		return errs.NewValueIsOutOfRangeError("measure", int(m), int(MinDimension), int(BoxVolume))
	}
	return nil
}

// String implements fmt.Stringer.
func (m Measure) String() string {
	switch m {
	case MinDimension:
		return "min"
	case MidDimension:
		return "mid"
	case MaxDimension:
		return "max"
	case Girth:
		return "girth"
	case Volume:
		return "volume"
	case BoxVolume:
		return "box_volume"
	default:
		return "unknown"
	}
}
