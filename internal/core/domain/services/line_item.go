package services

import (
	"errors"
	"fmt"
	"math"

	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one order line: a unit weight and unit price repeated quantity times.
type LineItem struct {
	quantity int
	grams    float64
	cents    int64

	guard guard.ConstructorGuard
}

// NewLineItem creates an order line.
//
// Parameters:
//   - quantity: number of units, zero lines are accepted and pack nothing
//   - grams: weight of a single unit
//   - price: price of a single unit, anything parcel.CentsFrom accepts; nil means free
//
// Returns:
//   - the LineItem
//   - errs.ValueIsOutOfRangeError for a negative quantity or price
//   - errs.ValueIsInvalidError for a negative or non-finite weight or an unreadable price
//
// Example:
//
//	item, err := services.NewLineItem(2, 450, "19.99")
func NewLineItem(quantity int, grams float64, price any) (LineItem, error) {
	if quantity < 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("grams", fmt.Errorf("%v is not a valid unit weight", grams))
	}

	cents, err := parcel.CentsFrom(price)
	if err != nil {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	if cents != nil && *cents < 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("price", *cents, 0, int64(math.MaxInt64))
	}

	item := LineItem{
		quantity: quantity,
		grams:    grams,
		guard:    guard.NewConstructorGuard(),
	}
	if cents != nil {
		item.cents = *cents
	}
	return item, nil
}

// Validate ensures the item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// Quantity returns the number of units.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Grams returns the weight of one unit.
func (i LineItem) Grams() float64 {
	return i.grams
}

// Cents returns the price of one unit.
func (i LineItem) Cents() int64 {
	return i.cents
}

// itemCursor walks the quantity-expanded unit sequence without materialising it.
type itemCursor struct {
	items []LineItem
	index int
	taken int
}

// peek returns the next pending unit without consuming it.
func (c *itemCursor) peek() (LineItem, bool) {
	for c.index < len(c.items) && c.taken >= c.items[c.index].quantity {
		c.index++
		c.taken = 0
	}
	if c.index >= len(c.items) {
		return LineItem{}, false
	}
	return c.items[c.index], true
}

// remaining returns how many units of the current line are still pending.
// It is only meaningful after a successful peek.
func (c *itemCursor) remaining() int {
	return c.items[c.index].quantity - c.taken
}

// advanceBy consumes n units of the current line.
func (c *itemCursor) advanceBy(n int) {
	c.taken += n
}

func (c *itemCursor) exhausted() bool {
	_, ok := c.peek()
	return !ok
}
