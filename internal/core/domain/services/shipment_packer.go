package services

import (
	"errors"
	"fmt"
	"math"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/pkg/errs"
)

// DefaultMaxPackages caps how many parcels a single Pack call may emit.
const DefaultMaxPackages = 10000

// weightTolerance absorbs float noise when weights are summed and compared
// against the maximum package weight, relative to that maximum.
const weightTolerance = 1e-9

var (
	// ErrOverweightItem is returned when a single unit is heavier than the maximum package weight.
	ErrOverweightItem = errors.New("item is heavier than the maximum package weight")

	// ErrExcessPackageQuantity is returned when packing would emit more parcels than allowed.
	ErrExcessPackageQuantity = errors.New("too many packages")
)

// PackingState is a state of the packing machine.
//
// State transitions:
//
//	PackageEmpty ──> FillingPackage ──> PackageFull ──┬──> PackageEmpty
//	                                                  └──> PackingFinished
type PackingState int

const (
	// PackageEmpty resets the running weight and value of the next parcel.
	PackageEmpty PackingState = iota

	// FillingPackage adds units while they fit.
	FillingPackage

	// PackageFull emits the current parcel.
	PackageFull

	// PackingFinished is terminal.
	PackingFinished
)

func getPackingStateStrings() map[PackingState]string {
	return map[PackingState]string{
		PackageEmpty:    "PackageEmpty",
		FillingPackage:  "FillingPackage",
		PackageFull:     "PackageFull",
		PackingFinished: "PackingFinished",
	}
}

// String implements fmt.Stringer.
func (s PackingState) String() string {
	if str, ok := getPackingStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// PackerOption configures a ShipmentPacker.
type PackerOption func(*ShipmentPacker)

// WithMaxPackages overrides DefaultMaxPackages.
func WithMaxPackages(n int) PackerOption {
	return func(p *ShipmentPacker) {
		p.maxPackages = n
	}
}

// ShipmentPacker splits order line items into parcels with strict first-fit packing.
//
// Business rules:
//   - units are packed in input order and never reordered
//   - a unit joins the open parcel while the parcel stays within the maximum weight
//   - a unit heavier than the maximum fails the whole call before anything is packed
//   - no call emits more than the configured number of parcels
//
// The packer is not an optimal bin packer. It keeps no state between calls.
//
// Example usage:
//
//	packer, _ := services.NewShipmentPacker(registry)
//	item, _ := services.NewLineItem(3, 800, 12.5)
//	packages, err := packer.Pack([]services.LineItem{item}, []float64{30, 20, 10}, 2000, "USD")
//	if errors.Is(err, services.ErrOverweightItem) {
//	    // split the line or raise the limit
//	}
type ShipmentPacker struct {
	conv        measure.Converter
	maxPackages int
}

// NewShipmentPacker creates a packer.
//
// Parameters:
//   - conv: converter used to build the parcels
//   - opts: packer options
//
// Returns:
//   - the packer
//   - errs.ValueIsRequiredError without a converter
//   - errs.ValueIsOutOfRangeError for a non-positive package limit
func NewShipmentPacker(conv measure.Converter, opts ...PackerOption) (*ShipmentPacker, error) {
	if conv == nil {
		return nil, errs.NewValueIsRequiredError("converter")
	}

	p := &ShipmentPacker{
		conv:        conv,
		maxPackages: DefaultMaxPackages,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.maxPackages <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("max packages", p.maxPackages, 1, math.MaxInt)
	}
	return p, nil
}

// MaxPackages returns the parcel limit of a single call.
func (p *ShipmentPacker) MaxPackages() int {
	return p.maxPackages
}

// Pack distributes the units of items over metric parcels.
//
// Every parcel gets the given dimensions in centimetres, the summed weight of its
// units in grams, and the summed unit prices in cents as its declared value.
//
// Parameters:
//   - items: order lines, expanded by quantity in input order
//   - dimensions: zero to three parcel dimensions in centimetres
//   - maxWeightGrams: maximum parcel weight, must be positive
//   - currency: currency of the declared values
//
// Returns:
//   - the parcels in packing order, empty when there is nothing to pack
//   - ErrOverweightItem when a unit alone exceeds maxWeightGrams
//   - ErrExcessPackageQuantity when more parcels than allowed would be emitted
//   - validation errors for bad arguments
//
// No partial result is ever returned.
func (p *ShipmentPacker) Pack(items []LineItem, dimensions []float64, maxWeightGrams float64, currency string) ([]parcel.Package, error) {
	if err := p.validate(items, dimensions, maxWeightGrams); err != nil {
		return nil, err
	}

	cursor := &itemCursor{items: items}
	if cursor.exhausted() {
		return []parcel.Package{}, nil
	}

	var (
		packages []parcel.Package
		grams    float64
		cents    int64
		state    = PackageEmpty
	)

	for state != PackingFinished {
		switch state {
		case PackageEmpty:
			grams, cents = 0, 0
			state = FillingPackage

		case FillingPackage:
			item, ok := cursor.peek()
			if !ok {
				state = PackageFull
				continue
			}
			if exceeds(item.grams, maxWeightGrams) {
				return nil, overweight(item, maxWeightGrams)
			}

			n := unitsThatFit(grams, item.grams, maxWeightGrams, cursor.remaining())
			if n == 0 {
				state = PackageFull
				continue
			}

			cursor.advanceBy(n)
			grams += float64(n) * item.grams
			cents += int64(n) * item.cents
			if cursor.exhausted() {
				state = PackageFull
			}

		case PackageFull:
			if len(packages) >= p.maxPackages {
				return nil, fmt.Errorf("%w: more than %d packages needed", ErrExcessPackageQuantity, p.maxPackages)
			}

			pkg, err := parcel.NewPackage(p.conv, parcel.Number(grams), parcel.Numbers(dimensions...),
				parcel.WithUnits(measure.Metric),
				parcel.WithValue(cents),
				parcel.WithCurrency(currency),
			)
			if err != nil {
				return nil, err
			}
			packages = append(packages, pkg)

			state = PackageEmpty
			if cursor.exhausted() {
				state = PackingFinished
			}
		}
	}

	return packages, nil
}

func (p *ShipmentPacker) validate(items []LineItem, dimensions []float64, maxWeightGrams float64) error {
	if math.IsNaN(maxWeightGrams) || math.IsInf(maxWeightGrams, 0) || maxWeightGrams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max weight", fmt.Errorf("%v is not a positive weight", maxWeightGrams))
	}
	if len(dimensions) > 3 {
		return errs.NewValueIsOutOfRangeErrorWithCause("dimensions", len(dimensions), 0, 3, parcel.ErrTooManyDimensions)
	}
	for i, d := range dimensions {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("dimension %d", i), fmt.Errorf("%v is not a valid length", d))
		}
	}

	var totalGrams float64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.quantity > 0 && exceeds(item.grams, maxWeightGrams) {
			return overweight(item, maxWeightGrams)
		}
		totalGrams += float64(item.quantity) * item.grams
	}

	if atLeast := math.Ceil(totalGrams/maxWeightGrams - weightTolerance); atLeast > float64(p.maxPackages) {
		return fmt.Errorf("%w: at least %.0f packages needed, limit is %d", ErrExcessPackageQuantity, atLeast, p.maxPackages)
	}
	return nil
}

// exceeds reports whether grams is over maxWeightGrams beyond float noise.
func exceeds(grams, maxWeightGrams float64) bool {
	return grams-maxWeightGrams > weightTolerance*maxWeightGrams
}

// unitsThatFit returns how many of the next available units of one line join a
// parcel already holding grams. Adding them one at a time gives the same count;
// a run of identical units is taken at once so that weightless or very light
// units do not cost one step each.
func unitsThatFit(grams, unitGrams, maxWeightGrams float64, available int) int {
	if unitGrams == 0 {
		return available
	}

	room := maxWeightGrams + weightTolerance*maxWeightGrams - grams
	if room < 0 {
		return 0
	}
	n := available
	if fit := math.Floor(room / unitGrams); fit < float64(available) {
		n = int(fit)
	}
	for n > 0 && exceeds(grams+float64(n)*unitGrams, maxWeightGrams) {
		n--
	}
	if n < available && !exceeds(grams+float64(n+1)*unitGrams, maxWeightGrams) {
		n++
	}
	return n
}

func overweight(item LineItem, maxWeightGrams float64) error {
	return fmt.Errorf("%w: unit weighs %g g, maximum is %g g", ErrOverweightItem, item.grams, maxWeightGrams)
}
