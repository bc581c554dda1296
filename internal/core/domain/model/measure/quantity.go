package measure

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"shipping/internal/pkg/guard"
)

var (
	// ErrInvalidAmount is returned when a quantity would carry a NaN or infinite amount.
	ErrInvalidAmount = errors.New("amount must be a finite number")

	// ErrQuantityIsNotConstructed is returned when a zero Quantity is used.
	ErrQuantityIsNotConstructed = errors.New("Quantity must be created via NewQuantity")
)

// Converter supplies conversion rates between units. *Registry implements it.
type Converter interface {
	Rate(from, to Unit) (float64, error)
}

// Quantity is an immutable amount of a unit. Operations that involve two quantities
// first convert the right-hand operand into the unit of the receiver, so results are
// always expressed in the receiver's unit and 6 feet equals 2 yards.
//
// Operations with bare numbers treat the number as already being in the receiver's unit.
type Quantity struct {
	amount float64
	unit   Unit
	conv   Converter

	guard guard.ConstructorGuard
}

// NewQuantity creates a quantity converted through conv.
//
// Parameters:
//   - conv: the converter used for cross-unit operations, usually the process registry
//   - amount: a finite number
//   - unit: a valid unit
//
// Returns:
//   - the Quantity
//   - ErrInvalidAmount if amount is NaN or infinite, or a unit validation error
//
// Example:
//
//	length, err := measure.NewQuantity(registry, 6, measure.Foot)
func NewQuantity(conv Converter, amount float64, unit Unit) (Quantity, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Quantity{}, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}
	if err := unit.Validate(); err != nil {
		return Quantity{}, err
	}
	if conv == nil {
		return Quantity{}, fmt.Errorf("quantity of %s: converter is required", unit)
	}
	return Quantity{amount: amount, unit: unit, conv: conv, guard: guard.NewConstructorGuard()}, nil
}

// MustNewQuantity is like NewQuantity but panics on error. It is meant for
// literals known to be valid.
func MustNewQuantity(conv Converter, amount float64, unit Unit) Quantity {
	q, err := NewQuantity(conv, amount, unit)
	if err != nil {
		panic(err)
	}
	return q
}

// NewQuantity creates a quantity from a unit name or alias known to the registry.
//
// Returns:
//   - the Quantity
//   - errs.ObjectNotFoundError for an unknown unit name, or ErrInvalidAmount
func (r *Registry) NewQuantity(amount float64, unitName string) (Quantity, error) {
	unit, err := r.Lookup(unitName)
	if err != nil {
		return Quantity{}, err
	}
	return NewQuantity(r, amount, unit)
}

// Validate ensures the quantity was created through NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Amount returns the numeric amount in Unit().
func (q Quantity) Amount() float64 {
	return q.amount
}

// Float returns the amount as a bare number.
func (q Quantity) Float() float64 {
	return q.amount
}

// Unit returns the unit of the quantity.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Kind returns the kind of the quantity's unit.
func (q Quantity) Kind() Kind {
	return q.unit.kind
}

// System returns the system of the quantity's unit.
func (q Quantity) System() System {
	return q.unit.system
}

// Converter returns the converter the quantity was built with.
func (q Quantity) Converter() Converter {
	return q.conv
}

// String formats the quantity as "<amount> <unit>".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.amount, 'g', -1, 64) + " " + q.unit.String()
}

// ConvertTo expresses the quantity in another unit of the same kind.
// The receiver is returned unchanged when it is already in unit.
//
// Returns:
//   - the converted Quantity
//   - ErrNoConversionPath if unit cannot be reached from the quantity's unit
func (q Quantity) ConvertTo(unit Unit) (Quantity, error) {
	if err := q.Validate(); err != nil {
		return Quantity{}, err
	}
	if q.unit == unit {
		return q, nil
	}

	rate, err := q.conv.Rate(q.unit, unit)
	if err != nil {
		return Quantity{}, err
	}
	return NewQuantity(q.conv, q.amount*rate, unit)
}

// IsEqual reports whether other denotes the same amount once converted into the
// receiver's unit. Quantities of different kinds are never equal.
func (q Quantity) IsEqual(other Quantity) bool {
	if q.Kind() != other.Kind() {
		return false
	}
	converted, err := other.ConvertTo(q.unit)
	if err != nil {
		return false
	}
	return approxEqual(q.amount, converted.amount)
}

// EqualsNumber compares the amount with a bare number in the receiver's unit.
func (q Quantity) EqualsNumber(n float64) bool {
	return approxEqual(q.amount, n)
}

// Compare orders the receiver against other after converting other into the receiver's unit.
//
// Returns:
//   - -1, 0 or +1 as the receiver is less than, equal to or greater than other
//   - ErrNoConversionPath if the kinds differ or no path exists
func (q Quantity) Compare(other Quantity) (int, error) {
	converted, err := other.ConvertTo(q.unit)
	if err != nil {
		return 0, err
	}
	return compareAmounts(q.amount, converted.amount), nil
}

// CompareNumber orders the amount against a bare number in the receiver's unit.
func (q Quantity) CompareNumber(n float64) int {
	return compareAmounts(q.amount, n)
}

// Add returns q + other in the receiver's unit.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	converted, err := other.ConvertTo(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	return q.withAmount(q.amount + converted.amount)
}

// Sub returns q - other in the receiver's unit.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	converted, err := other.ConvertTo(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	return q.withAmount(q.amount - converted.amount)
}

// AddNumber adds a bare number to the amount.
func (q Quantity) AddNumber(n float64) (Quantity, error) {
	return q.withAmount(q.amount + n)
}

// SubNumber subtracts a bare number from the amount.
func (q Quantity) SubNumber(n float64) (Quantity, error) {
	return q.withAmount(q.amount - n)
}

// MulNumber scales the amount.
func (q Quantity) MulNumber(n float64) (Quantity, error) {
	return q.withAmount(q.amount * n)
}

// DivNumber divides the amount. Division by zero yields ErrInvalidAmount.
func (q Quantity) DivNumber(n float64) (Quantity, error) {
	return q.withAmount(q.amount / n)
}

// Max returns the greater of a and b, keeping the winner's own unit.
// a wins ties.
func Max(a, b Quantity) (Quantity, error) {
	cmp, err := a.Compare(b)
	if err != nil {
		return Quantity{}, err
	}
	if cmp < 0 {
		return b, nil
	}
	return a, nil
}

func (q Quantity) withAmount(amount float64) (Quantity, error) {
	if err := q.Validate(); err != nil {
		return Quantity{}, err
	}
	return NewQuantity(q.conv, amount, q.unit)
}

func compareAmounts(a, b float64) int {
	switch {
	case approxEqual(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}
