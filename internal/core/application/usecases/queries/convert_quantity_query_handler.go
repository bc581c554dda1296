package queries

import (
	"context"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/ports"
)

// ConvertQuantityQueryHandler converts amounts with the unit catalog.
type ConvertQuantityQueryHandler struct {
	catalog ports.UnitCatalog
}

// NewConvertQuantityQueryHandler creates a handler backed by catalog.
func NewConvertQuantityQueryHandler(catalog ports.UnitCatalog) ConvertQuantityQueryHandler {
	return ConvertQuantityQueryHandler{catalog: catalog}
}

// Handle resolves both unit names and converts the amount.
//
// Returns:
//   - the converted amount and the rate used
//   - errs.ObjectNotFoundError for an unknown unit name
//   - measure.ErrNoConversionPath when the units measure different kinds
func (h ConvertQuantityQueryHandler) Handle(
	_ context.Context,
	query ConvertQuantityQuery,
) (ConvertQuantityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ConvertQuantityQueryResponse{}, err
	}

	from, err := h.catalog.Lookup(query.From())
	if err != nil {
		return ConvertQuantityQueryResponse{}, err
	}
	to, err := h.catalog.Lookup(query.To())
	if err != nil {
		return ConvertQuantityQueryResponse{}, err
	}

	quantity, err := measure.NewQuantity(h.catalog, query.Amount(), from)
	if err != nil {
		return ConvertQuantityQueryResponse{}, err
	}
	converted, err := quantity.ConvertTo(to)
	if err != nil {
		return ConvertQuantityQueryResponse{}, err
	}
	rate, err := h.catalog.Rate(from, to)
	if err != nil {
		return ConvertQuantityQueryResponse{}, err
	}

	return ConvertQuantityQueryResponse{
		Amount:    quantity.Amount(),
		From:      from.Name(),
		Converted: converted.Amount(),
		To:        to.Name(),
		Rate:      rate,
		Kind:      from.Kind().String(),
	}, nil
}
