package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/domain/services"
	"shipping/internal/generated/servers"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps core errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrOverweightItem),
		errors.Is(err, services.ErrExcessPackageQuantity),
		errors.Is(err, measure.ErrNoConversionPath):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, measure.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
		ctx.Logger().Error(err)
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
