package parcel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MinorUnits is implemented by money values that already know their amount in cents.
type MinorUnits interface {
	Cents() int64
}

// CurrencyCarrier is implemented by money values that know their currency.
// A package without an explicit currency takes it from such a value.
type CurrencyCarrier interface {
	Currency() string
}

// CentsFrom normalises a monetary value to integer minor units.
//
// Accepted values:
//   - nil: no value
//   - MinorUnits: its Cents()
//   - float32, float64, decimal.Decimal: major units, rounded half away from zero to cents
//   - string containing ".": major units, parsed exactly and rounded to cents
//   - string without ".": already cents
//   - any integer type: already cents
//
// Returns:
//   - nil when value is nil, otherwise the amount in cents
//   - errs.ValueIsInvalidError for unparseable strings, non-finite floats and unsupported types
//   - errs.ValueIsOutOfRangeError for amounts that do not fit in int64 cents
//
// Example:
//
//	cents, _ := parcel.CentsFrom(12.5)    // 1250
//	cents, _ = parcel.CentsFrom("12.50")  // 1250
//	cents, _ = parcel.CentsFrom("1250")   // 1250
//	cents, _ = parcel.CentsFrom(1250)     // 1250
func CentsFrom(value any) (*int64, error) {
	var cents int64

	switch v := value.(type) {
	case nil:
		return nil, nil
	case MinorUnits:
		cents = v.Cents()
	case decimal.Decimal:
		c, err := majorToCents(v)
		if err != nil {
			return nil, err
		}
		cents = c
	case float64:
		c, err := floatToCents(v)
		if err != nil {
			return nil, err
		}
		cents = c
	case float32:
		c, err := floatToCents(float64(v))
		if err != nil {
			return nil, err
		}
		cents = c
	case string:
		parsed, err := centsFromString(v)
		if err != nil {
			return nil, err
		}
		cents = parsed
	case int:
		cents = int64(v)
	case int8:
		cents = int64(v)
	case int16:
		cents = int64(v)
	case int32:
		cents = int64(v)
	case int64:
		cents = v
	case uint:
		c, err := unsignedToCents(uint64(v))
		if err != nil {
			return nil, err
		}
		cents = c
	case uint8:
		cents = int64(v)
	case uint16:
		cents = int64(v)
	case uint32:
		cents = int64(v)
	case uint64:
		c, err := unsignedToCents(v)
		if err != nil {
			return nil, err
		}
		cents = c
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%T is not a supported money value", value))
	}

	return &cents, nil
}

func centsFromString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause("value", err)
		}
		return majorToCents(d)
	}

	cents, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("value", err)
	}
	return cents, nil
}

var (
	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

func floatToCents(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%v is not a finite amount", f))
	}
	return majorToCents(decimal.NewFromFloat(f))
}

// majorToCents rounds half away from zero and rejects amounts that do not fit in int64 cents.
func majorToCents(d decimal.Decimal) (int64, error) {
	cents := d.Shift(2).Round(0)
	if cents.LessThan(minCents) || cents.GreaterThan(maxCents) {
		return 0, errs.NewValueIsOutOfRangeError("value", cents.String(), minCents.String(), maxCents.String())
	}
	return cents.IntPart(), nil
}

func unsignedToCents(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, errs.NewValueIsOutOfRangeError("value", v, 0, uint64(math.MaxInt64))
	}
	return int64(v), nil
}
