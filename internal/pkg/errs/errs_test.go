package errs_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should format the missing identifier", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("unit", "furlong")

		assert.Equal(t, "unit", err.ParamName)
		assert.Equal(t, "furlong", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: furlong", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("should include param and cause", func(t *testing.T) {
		cause := errors.New("no such alias")
		err := errs.NewObjectNotFoundErrorWithCause("unit", "furlong", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: unit, ID is: furlong (cause: no such alias)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("should keep fmt verb output for non-string identifiers", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("index", 4)
		assert.Equal(t, "object not found: %!s(int=4)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("should format the parameter name", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount")

		assert.Equal(t, "amount", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: amount", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("should append the cause", func(t *testing.T) {
		cause := errors.New("NaN is not a finite number")
		err := errs.NewValueIsInvalidErrorWithCause("amount", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: amount (cause: NaN is not a finite number)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("should describe the bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("dimensions", 4, 0, 3)

		assert.Equal(t, "dimensions", err.ParamName)
		assert.Equal(t, 4, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 3, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 4 is dimensions, min value is 0, max value is 3", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("should append the cause", func(t *testing.T) {
		cause := errors.New("too many packages")
		err := errs.NewValueIsOutOfRangeErrorWithCause("packages", 10001, 1, 10000, cause)

		assert.Equal(t,
			"value is invalid: 10001 is packages, min value is 1, max value is 10000 (cause: too many packages)",
			err.Error())
	})

	t.Run("should flatten newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("should format the parameter name", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("currency")

		assert.Equal(t, "currency", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: currency", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("should append the cause", func(t *testing.T) {
		cause := errors.New("empty string")
		err := errs.NewValueIsRequiredErrorWithCause("currency", cause)

		assert.Equal(t, "value is required: currency (cause: empty string)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("unit", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("amount"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("n", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("currency"), errs.ErrValueIsRequired)

	wrapped := errors.Join(errors.New("context"), errs.NewValueIsInvalidError("grams"))
	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, wrapped, &invalid)
	assert.Equal(t, "grams", invalid.ParamName)
}

func TestErrorsMatchTheirCause(t *testing.T) {
	errTooHeavy := errors.New("too heavy")

	require.ErrorIs(t, errs.NewValueIsInvalidErrorWithCause("grams", errTooHeavy), errTooHeavy)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeErrorWithCause("n", 4, 0, 3, errTooHeavy), errTooHeavy)
	require.ErrorIs(t, errs.NewValueIsRequiredErrorWithCause("x", errTooHeavy), errTooHeavy)
	require.ErrorIs(t, errs.NewObjectNotFoundErrorWithCause("unit", "x", errTooHeavy), errTooHeavy)
	require.NotErrorIs(t, errs.NewValueIsInvalidError("grams"), errTooHeavy)
}
