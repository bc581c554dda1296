package queries

import (
	"context"

	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/ports"
)

// ListUnitsQueryHandler reads the unit catalog.
type ListUnitsQueryHandler struct {
	catalog ports.UnitCatalog
}

// NewListUnitsQueryHandler creates a handler backed by catalog.
func NewListUnitsQueryHandler(catalog ports.UnitCatalog) ListUnitsQueryHandler {
	return ListUnitsQueryHandler{catalog: catalog}
}

// Handle returns the units of the query's kind, metric first, in registration order.
// Systems without units are left out.
func (h ListUnitsQueryHandler) Handle(_ context.Context, query ListUnitsQuery) (ListUnitsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUnitsQueryResponse{}, err
	}

	res := ListUnitsQueryResponse{
		Kind:       query.Kind().String(),
		Primitives: make([]string, 0),
		Systems:    make([]SystemUnits, 0),
	}
	for _, p := range h.catalog.Primitives(query.Kind()) {
		res.Primitives = append(res.Primitives, p.Name())
	}

	for _, system := range measure.Systems() {
		units := h.catalog.SystemUnits(query.Kind(), system)
		if len(units) == 0 {
			continue
		}

		group := SystemUnits{System: system.String(), Units: make([]UnitInfo, 0, len(units))}
		for _, u := range units {
			group.Units = append(group.Units, UnitInfo{Name: u.Name(), Aliases: h.catalog.Aliases(u)})
		}
		res.Systems = append(res.Systems, group)
	}

	return res, nil
}
