package queries_test

import (
	"math"
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConvertQuantityQuery_ValidInput(t *testing.T) {
	q, err := queries.NewConvertQuantityQuery(12, " in ", "cm")
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, 12.0, q.Amount())
	assert.Equal(t, "in", q.From())
	assert.Equal(t, "cm", q.To())
}

func TestNewConvertQuantityQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewConvertQuantityQuery(math.NaN(), "", " ")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "from")
	assert.Contains(t, err.Error(), "to")
}

func TestConvertQuantityQuery_ZeroValue(t *testing.T) {
	var q queries.ConvertQuantityQuery
	require.ErrorIs(t, q.Validate(), queries.ErrConvertQuantityQueryIsNotConstructed)
}
