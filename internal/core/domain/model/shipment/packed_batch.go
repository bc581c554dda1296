package shipment

import (
	"errors"
	"fmt"
	"slices"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrPackedBatchIsNotConstructed is returned when a PackedBatch was not created via NewPackedBatch.
var ErrPackedBatchIsNotConstructed = errors.New("PackedBatch must be created via NewPackedBatch constructor")

// PackedBatch is the outcome of packing one order. It owns a copy of the packages
// and precomputes the total actual weight and declared value.
//
// Example:
//
//	packages, err := packer.Pack(items, []float64{30, 20, 10}, 5000, "USD")
//	if err != nil {
//	    return err
//	}
//	batch, err := shipment.NewPackedBatch(kernel.NewUUID(), packages, "USD")
type PackedBatch struct {
	id         kernel.UUID
	packages   []parcel.Package
	totalGrams float64
	totalCents int64
	currency   string

	guard guard.ConstructorGuard
}

// NewPackedBatch wraps packed parcels into a batch.
//
// Parameters:
//   - id: batch identifier, must not be the nil UUID
//   - packages: the packed parcels, possibly empty; each must be constructed
//   - currency: currency of the declared values
//
// Returns:
//   - the batch with totals computed from the actual weights and values
//   - an error when the id or a package is invalid
func NewPackedBatch(id kernel.UUID, packages []parcel.Package, currency string) (*PackedBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	b := &PackedBatch{
		id:       id,
		packages: slices.Clone(packages),
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}

	for i, pkg := range b.packages {
		if err := pkg.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("package %d", i), err)
		}
		grams, err := pkg.Grams(parcel.Actual)
		if err != nil {
			return nil, err
		}
		b.totalGrams += grams
		if cents, ok := pkg.Value(); ok {
			b.totalCents += cents
		}
	}

	return b, nil
}

// Validate ensures the batch was created through NewPackedBatch.
func (b *PackedBatch) Validate() error {
	if b == nil {
		return errs.NewValueIsRequiredError("packed batch")
	}
	return b.guard.Validate(ErrPackedBatchIsNotConstructed)
}

// ID returns the batch identifier.
func (b *PackedBatch) ID() kernel.UUID {
	return b.id
}

// Packages returns a copy of the packed parcels in packing order.
func (b *PackedBatch) Packages() []parcel.Package {
	return slices.Clone(b.packages)
}

// Count returns the number of parcels.
func (b *PackedBatch) Count() int {
	return len(b.packages)
}

// TotalGrams returns the sum of the actual weights.
func (b *PackedBatch) TotalGrams() float64 {
	return b.totalGrams
}

// TotalCents returns the sum of the declared values.
func (b *PackedBatch) TotalCents() int64 {
	return b.totalCents
}

// Currency returns the currency of the declared values.
func (b *PackedBatch) Currency() string {
	return b.currency
}

// IsEmpty reports whether nothing was packed.
func (b *PackedBatch) IsEmpty() bool {
	return len(b.packages) == 0
}
