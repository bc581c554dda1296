package commands

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode"

	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrPackShipmentCommandIsNotConstructed = errors.New(
		"PackShipmentCommand must be created via NewPackShipmentCommand constructor",
	)
	ErrCurrencyIsInvalid = errors.New("currency must be a three letter code")
)

// PackShipmentCommand asks to pack an order into parcels of a fixed size and
// maximum weight.
//
// Example:
//
//	item, _ := services.NewLineItem(4, 350, "12.99")
//	cmd, err := NewPackShipmentCommand([]services.LineItem{item}, []float64{30, 20, 15}, 1000, "usd")
//	if err != nil {
//	    return fmt.Errorf("invalid packing request: %w", err)
//	}
//
//	batch, err := handler.Handle(ctx, cmd)
type PackShipmentCommand struct { //nolint:recvcheck //using for validation
	items          []services.LineItem
	dimensions     []float64
	maxWeightGrams float64
	currency       string

	guard guard.ConstructorGuard
}

// NewPackShipmentCommand creates a packing request.
// The currency is upper-cased; an empty currency lets the handler apply its default.
func NewPackShipmentCommand(
	items []services.LineItem,
	dimensions []float64,
	maxWeightGrams float64,
	currency string,
) (PackShipmentCommand, error) {
	cmd := PackShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItems(items),
		cmd.setDimensions(dimensions),
		cmd.setMaxWeight(maxWeightGrams),
		cmd.setCurrency(currency),
	); err != nil {
		return PackShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PackShipmentCommand) Validate() error {
	return c.guard.Validate(ErrPackShipmentCommandIsNotConstructed)
}

// Items returns the order lines.
func (c PackShipmentCommand) Items() []services.LineItem {
	return slices.Clone(c.items)
}

// Dimensions returns the parcel dimensions in centimetres.
func (c PackShipmentCommand) Dimensions() []float64 {
	return slices.Clone(c.dimensions)
}

// MaxWeightGrams returns the maximum parcel weight.
func (c PackShipmentCommand) MaxWeightGrams() float64 {
	return c.maxWeightGrams
}

// Currency returns the currency code, empty when the default applies.
func (c PackShipmentCommand) Currency() string {
	return c.currency
}

func (c *PackShipmentCommand) setItems(items []services.LineItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d", i), err)
		}
	}

	c.items = slices.Clone(items)
	return nil
}

func (c *PackShipmentCommand) setDimensions(dimensions []float64) error {
	if len(dimensions) > 3 {
		return errs.NewValueIsOutOfRangeErrorWithCause("dimensions", len(dimensions), 0, 3, parcel.ErrTooManyDimensions)
	}
	for i, d := range dimensions {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("dimension %d", i), fmt.Errorf("%v is not a valid length", d))
		}
	}

	c.dimensions = slices.Clone(dimensions)
	return nil
}

func (c *PackShipmentCommand) setMaxWeight(grams float64) error {
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max weight", fmt.Errorf("%v is not a positive weight", grams))
	}

	c.maxWeightGrams = grams
	return nil
}

func (c *PackShipmentCommand) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil
	}
	if len(currency) != 3 || strings.IndexFunc(currency, func(r rune) bool { return !unicode.IsUpper(r) }) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("currency", ErrCurrencyIsInvalid)
	}

	c.currency = currency
	return nil
}
