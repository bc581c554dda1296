package services_test

import (
	"math"
	"testing"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPacker(t *testing.T, opts ...services.PackerOption) *services.ShipmentPacker {
	t.Helper()
	registry, err := measure.NewStandardRegistry()
	require.NoError(t, err)
	packer, err := services.NewShipmentPacker(registry, opts...)
	require.NoError(t, err)
	return packer
}

func lineItem(t *testing.T, quantity int, grams float64, price any) services.LineItem {
	t.Helper()
	item, err := services.NewLineItem(quantity, grams, price)
	require.NoError(t, err)
	return item
}

func packedGrams(t *testing.T, packages []parcel.Package) []float64 {
	t.Helper()
	out := make([]float64, len(packages))
	for i, pkg := range packages {
		grams, err := pkg.Grams(parcel.Actual)
		require.NoError(t, err)
		out[i] = grams
	}
	return out
}

func packedCents(packages []parcel.Package) []int64 {
	out := make([]int64, len(packages))
	for i, pkg := range packages {
		out[i], _ = pkg.Value()
	}
	return out
}

func TestNewLineItem(t *testing.T) {
	t.Run("should read the price as cents", func(t *testing.T) {
		item, err := services.NewLineItem(2, 150, "4.99")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, 150.0, item.Grams())
		assert.Equal(t, int64(499), item.Cents())
	})

	t.Run("should treat a missing price as free", func(t *testing.T) {
		item, err := services.NewLineItem(1, 10, nil)

		require.NoError(t, err)
		assert.Zero(t, item.Cents())
	})

	t.Run("should reject invalid lines", func(t *testing.T) {
		_, err := services.NewLineItem(-1, 10, 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = services.NewLineItem(1, -10, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = services.NewLineItem(1, math.NaN(), 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = services.NewLineItem(1, 10, "free")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = services.NewLineItem(1, 10, "-5.00")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = services.NewLineItem(1, 10, -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should flag zero values", func(t *testing.T) {
		var item services.LineItem

		require.ErrorIs(t, item.Validate(), services.ErrLineItemIsNotConstructed)
	})
}

func TestNewShipmentPacker(t *testing.T) {
	t.Run("should default the package limit", func(t *testing.T) {
		assert.Equal(t, services.DefaultMaxPackages, newPacker(t).MaxPackages())
		assert.Equal(t, 3, newPacker(t, services.WithMaxPackages(3)).MaxPackages())
	})

	t.Run("should reject bad configuration", func(t *testing.T) {
		_, err := services.NewShipmentPacker(nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		registry, err := measure.NewStandardRegistry()
		require.NoError(t, err)
		_, err = services.NewShipmentPacker(registry, services.WithMaxPackages(0))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestShipmentPacker_Pack(t *testing.T) {
	dims := []float64{10, 20, 30}

	t.Run("should give one package per unit when only one fits", func(t *testing.T) {
		packer := newPacker(t)

		packages, err := packer.Pack([]services.LineItem{lineItem(t, 2, 1, 1.0)}, dims, 1, "USD")

		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1}, packedGrams(t, packages))
		assert.Equal(t, []int64{100, 100}, packedCents(packages))
	})

	t.Run("should fill a package up to the exact maximum", func(t *testing.T) {
		packer := newPacker(t)

		packages, err := packer.Pack([]services.LineItem{lineItem(t, 2, 1, 1.0)}, dims, 2, "USD")

		require.NoError(t, err)
		assert.Equal(t, []float64{2}, packedGrams(t, packages))
		assert.Equal(t, []int64{200}, packedCents(packages))
	})

	t.Run("should fill a package whose units sum to the maximum with float noise", func(t *testing.T) {
		packer := newPacker(t, services.WithMaxPackages(1))

		packages, err := packer.Pack([]services.LineItem{lineItem(t, 3, 0.1, 1)}, dims, 0.3, "USD")

		require.NoError(t, err)
		require.Len(t, packages, 1)
		assert.InDelta(t, 0.3, packedGrams(t, packages)[0], 1e-12)
		assert.Equal(t, []int64{3}, packedCents(packages))
	})

	t.Run("should pack a huge line of weightless units into one package", func(t *testing.T) {
		packer := newPacker(t, services.WithMaxPackages(1))

		packages, err := packer.Pack([]services.LineItem{lineItem(t, math.MaxInt32, 0, 0)}, dims, 1, "USD")

		require.NoError(t, err)
		assert.Equal(t, []float64{0}, packedGrams(t, packages))
	})

	t.Run("should take runs of light units the way single units would go", func(t *testing.T) {
		packer := newPacker(t)
		items := []services.LineItem{
			lineItem(t, 1, 0.5, 1),
			lineItem(t, 7, 0.25, 2),
			lineItem(t, 2, 0.75, 3),
		}

		packages, err := packer.Pack(items, dims, 1, "USD")

		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1, 1, 0.75}, packedGrams(t, packages))
		assert.Equal(t, []int64{5, 8, 5, 3}, packedCents(packages))
	})

	t.Run("should keep input order without backtracking", func(t *testing.T) {
		packer := newPacker(t)
		items := []services.LineItem{
			lineItem(t, 1, 600, 10),
			lineItem(t, 1, 600, 20),
			lineItem(t, 1, 300, 30),
			lineItem(t, 2, 100, 40),
		}

		packages, err := packer.Pack(items, dims, 1000, "EUR")

		require.NoError(t, err)
		assert.Equal(t, []float64{600, 1000, 100}, packedGrams(t, packages))
		assert.Equal(t, []int64{10, 90, 40}, packedCents(packages))
	})

	t.Run("should conserve total weight and value", func(t *testing.T) {
		packer := newPacker(t)
		items := []services.LineItem{
			lineItem(t, 3, 250.5, "3.33"),
			lineItem(t, 0, 900, "100"),
			lineItem(t, 5, 125.25, 0.5),
			lineItem(t, 2, 999, 1999),
		}

		packages, err := packer.Pack(items, dims, 1000, "USD")
		require.NoError(t, err)

		var grams float64
		for _, g := range packedGrams(t, packages) {
			assert.LessOrEqual(t, g, 1000.0)
			grams += g
		}
		var cents int64
		for _, c := range packedCents(packages) {
			cents += c
		}
		assert.InDelta(t, 3*250.5+5*125.25+2*999, grams, 1e-9)
		assert.Equal(t, int64(3*333+5*50+2*1999), cents)
	})

	t.Run("should build metric packages with the given dimensions and currency", func(t *testing.T) {
		packer := newPacker(t)

		packages, err := packer.Pack([]services.LineItem{lineItem(t, 1, 500, 1)}, []float64{30, 10}, 1000, "GBP")

		require.NoError(t, err)
		require.Len(t, packages, 1)
		pkg := packages[0]
		assert.Equal(t, measure.Metric, pkg.UnitSystem())
		assert.Equal(t, "GBP", pkg.Currency())
		cm := pkg.AllCentimetres()
		assert.InDeltaSlice(t, []float64{10, 10, 30}, cm[:], 1e-12)
	})

	t.Run("should return nothing for nothing", func(t *testing.T) {
		packer := newPacker(t)

		packages, err := packer.Pack(nil, dims, 1000, "USD")
		require.NoError(t, err)
		assert.Empty(t, packages)

		packages, err = packer.Pack([]services.LineItem{lineItem(t, 0, 5000, 1)}, dims, 1000, "USD")
		require.NoError(t, err)
		assert.Empty(t, packages)
	})

	t.Run("should fail on an overweight unit before packing anything", func(t *testing.T) {
		packer := newPacker(t)
		items := []services.LineItem{
			lineItem(t, 1, 100, 1),
			lineItem(t, 1, 1000.5, 1),
		}

		packages, err := packer.Pack(items, dims, 1000, "USD")

		require.ErrorIs(t, err, services.ErrOverweightItem)
		assert.Nil(t, packages)
	})

	t.Run("should fail when too many packages are needed", func(t *testing.T) {
		packer := newPacker(t, services.WithMaxPackages(2))

		packages, err := packer.Pack([]services.LineItem{lineItem(t, 3, 10, 1)}, dims, 10, "USD")

		require.ErrorIs(t, err, services.ErrExcessPackageQuantity)
		assert.Nil(t, packages)
	})

	t.Run("should fail when greedy packing exceeds the limit the weight estimate allows", func(t *testing.T) {
		packer := newPacker(t, services.WithMaxPackages(2))
		items := []services.LineItem{lineItem(t, 3, 6, 1)}

		packages, err := packer.Pack(items, dims, 10, "USD")

		require.ErrorIs(t, err, services.ErrExcessPackageQuantity)
		assert.Nil(t, packages)
	})

	t.Run("should accept exactly the limit", func(t *testing.T) {
		packer := newPacker(t, services.WithMaxPackages(3))

		packages, err := packer.Pack([]services.LineItem{lineItem(t, 3, 10, 1)}, dims, 10, "USD")

		require.NoError(t, err)
		assert.Len(t, packages, 3)
	})

	t.Run("should reject bad arguments", func(t *testing.T) {
		packer := newPacker(t)
		items := []services.LineItem{lineItem(t, 1, 1, 1)}

		_, err := packer.Pack(items, dims, 0, "USD")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = packer.Pack(items, []float64{1, 2, 3, 4}, 10, "USD")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = packer.Pack(items, []float64{-1}, 10, "USD")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = packer.Pack([]services.LineItem{{}}, dims, 10, "USD")
		require.ErrorIs(t, err, services.ErrLineItemIsNotConstructed)
	})
}

func TestPackingState_String(t *testing.T) {
	t.Run("should name every state", func(t *testing.T) {
		assert.Equal(t, "PackageEmpty", services.PackageEmpty.String())
		assert.Equal(t, "FillingPackage", services.FillingPackage.String())
		assert.Equal(t, "PackageFull", services.PackageFull.String())
		assert.Equal(t, "PackingFinished", services.PackingFinished.String())
		assert.Equal(t, "Unknown", services.PackingState(7).String())
	})
}
