package shipment_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackedBatch(t *testing.T) {
	registry, err := measure.NewStandardRegistry()
	require.NoError(t, err)

	newPackage := func(t *testing.T, weight parcel.Input, value any) parcel.Package {
		t.Helper()
		pkg, err := parcel.NewPackage(registry, weight, parcel.Numbers(10), parcel.WithValue(value))
		require.NoError(t, err)
		return pkg
	}

	t.Run("should total actual weights and values", func(t *testing.T) {
		id := kernel.NewUUID()
		packages := []parcel.Package{
			newPackage(t, parcel.Number(1500), 1250),
			newPackage(t, parcel.Measured(measure.MustNewQuantity(registry, 1, measure.Pound)), "3.50"),
			newPackage(t, parcel.Number(2), nil),
		}

		batch, err := shipment.NewPackedBatch(id, packages, "USD")

		require.NoError(t, err)
		require.NoError(t, batch.Validate())
		assert.True(t, batch.ID().IsEqual(id))
		assert.Equal(t, 3, batch.Count())
		assert.False(t, batch.IsEmpty())
		assert.InDelta(t, 1500+453.59237+2, batch.TotalGrams(), 1e-9)
		assert.Equal(t, int64(1600), batch.TotalCents())
		assert.Equal(t, "USD", batch.Currency())
	})

	t.Run("should own its packages", func(t *testing.T) {
		packages := []parcel.Package{newPackage(t, parcel.Number(1), nil)}
		batch, err := shipment.NewPackedBatch(kernel.NewUUID(), packages, "USD")
		require.NoError(t, err)

		packages[0] = parcel.Package{}
		returned := batch.Packages()
		returned[0] = parcel.Package{}

		require.NoError(t, batch.Packages()[0].Validate())
	})

	t.Run("should accept an empty batch", func(t *testing.T) {
		batch, err := shipment.NewPackedBatch(kernel.NewUUID(), nil, "EUR")

		require.NoError(t, err)
		assert.True(t, batch.IsEmpty())
		assert.Zero(t, batch.TotalGrams())
		assert.Zero(t, batch.TotalCents())
	})

	t.Run("should reject a nil id or a zero package", func(t *testing.T) {
		_, err := shipment.NewPackedBatch(kernel.UUID{}, nil, "USD")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = shipment.NewPackedBatch(kernel.NewUUID(), []parcel.Package{{}}, "USD")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should flag zero values", func(t *testing.T) {
		var batch shipment.PackedBatch
		var missing *shipment.PackedBatch

		require.ErrorIs(t, batch.Validate(), shipment.ErrPackedBatchIsNotConstructed)
		require.ErrorIs(t, missing.Validate(), errs.ErrValueIsRequired)
	})
}
