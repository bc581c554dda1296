package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/measure"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUnitCatalog struct{ mock.Mock }

func (m *MockUnitCatalog) Rate(from, to measure.Unit) (float64, error) {
	args := m.Called(from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockUnitCatalog) Lookup(name string) (measure.Unit, error) {
	args := m.Called(name)
	return args.Get(0).(measure.Unit), args.Error(1)
}

func (m *MockUnitCatalog) Primitives(kind measure.Kind) []measure.Unit {
	args := m.Called(kind)
	return args.Get(0).([]measure.Unit)
}

func (m *MockUnitCatalog) SystemUnits(kind measure.Kind, system measure.System) []measure.Unit {
	args := m.Called(kind, system)
	return args.Get(0).([]measure.Unit)
}

func (m *MockUnitCatalog) Aliases(unit measure.Unit) []string {
	args := m.Called(unit)
	return args.Get(0).([]string)
}

func standardRegistry(t *testing.T) *measure.Registry {
	t.Helper()
	r, err := measure.NewStandardRegistry()
	require.NoError(t, err)
	return r
}

func TestConvertQuantityQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	q, _ := queries.NewConvertQuantityQuery(12, "inches", "cm")

	h := queries.NewConvertQuantityQueryHandler(standardRegistry(t))
	res, err := h.Handle(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, 12.0, res.Amount)
	assert.Equal(t, "inch", res.From)
	assert.Equal(t, "centimetre", res.To)
	assert.InDelta(t, 30.48, res.Converted, 1e-9)
	assert.InDelta(t, 2.54, res.Rate, 1e-12)
	assert.Equal(t, "length", res.Kind)
}

func TestConvertQuantityQueryHandler_Handle_UnknownUnit(t *testing.T) {
	ctx := t.Context()
	q, _ := queries.NewConvertQuantityQuery(1, "furlong", "m")

	h := queries.NewConvertQuantityQueryHandler(standardRegistry(t))
	_, err := h.Handle(ctx, q)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestConvertQuantityQueryHandler_Handle_NoConversionPath(t *testing.T) {
	ctx := t.Context()
	q, _ := queries.NewConvertQuantityQuery(1, "kg", "ft")

	h := queries.NewConvertQuantityQueryHandler(standardRegistry(t))
	_, err := h.Handle(ctx, q)

	require.ErrorIs(t, err, measure.ErrNoConversionPath)
}

func TestConvertQuantityQueryHandler_Handle_StopsAtFirstLookupError(t *testing.T) {
	ctx := t.Context()
	q, _ := queries.NewConvertQuantityQuery(1, "furlong", "m")

	catalog := new(MockUnitCatalog)
	catalog.On("Lookup", "furlong").Return(measure.Unit{}, errs.NewObjectNotFoundError("unit", "furlong")).Once()

	h := queries.NewConvertQuantityQueryHandler(catalog)
	_, err := h.Handle(ctx, q)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	catalog.AssertExpectations(t)
	catalog.AssertNotCalled(t, "Lookup", "m")
	catalog.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything)
}

func TestConvertQuantityQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	catalog := new(MockUnitCatalog)

	h := queries.NewConvertQuantityQueryHandler(catalog)
	_, err := h.Handle(ctx, queries.ConvertQuantityQuery{})

	require.ErrorIs(t, err, queries.ErrConvertQuantityQueryIsNotConstructed)
	catalog.AssertExpectations(t)
}
