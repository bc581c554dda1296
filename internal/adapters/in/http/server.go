package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	packShipmentHandler commands.PackShipmentCommandHandler

	// Query handlers
	convertQuantityHandler queries.ConvertQuantityQueryHandler
	listUnitsHandler       queries.ListUnitsQueryHandler
	measurePackageHandler  queries.MeasurePackageQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	packShipmentHandler commands.PackShipmentCommandHandler,
	convertQuantityHandler queries.ConvertQuantityQueryHandler,
	listUnitsHandler queries.ListUnitsQueryHandler,
	measurePackageHandler queries.MeasurePackageQueryHandler,
) *Server {
	return &Server{
		packShipmentHandler:    packShipmentHandler,
		convertQuantityHandler: convertQuantityHandler,
		listUnitsHandler:       listUnitsHandler,
		measurePackageHandler:  measurePackageHandler,
	}
}

// ListUnits handles GET /v1/units/{kind} - lists the units of a kind.
func (s *Server) ListUnits(ctx echo.Context, kind servers.ListUnitsParamsKind) error {
	query, err := queries.NewListUnitsQuery(string(kind))
	if err != nil {
		return errorResponse(ctx, err)
	}

	res, err := s.listUnitsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.UnitList{
		Kind:       res.Kind,
		Primitives: res.Primitives,
		Systems:    make([]servers.UnitSystem, len(res.Systems)),
	}
	for i, system := range res.Systems {
		units := make([]servers.Unit, len(system.Units))
		for j, u := range system.Units {
			units[j] = servers.Unit{Name: u.Name, Aliases: u.Aliases}
		}
		response.Systems[i] = servers.UnitSystem{System: system.System, Units: units}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConvertQuantity handles GET /v1/conversions - converts an amount between units.
func (s *Server) ConvertQuantity(ctx echo.Context, params servers.ConvertQuantityParams) error {
	query, err := queries.NewConvertQuantityQuery(params.Amount, params.From, params.To)
	if err != nil {
		return errorResponse(ctx, err)
	}

	res, err := s.convertQuantityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Conversion{
		Amount:    res.Amount,
		From:      res.From,
		Converted: res.Converted,
		To:        res.To,
		Rate:      res.Rate,
		Kind:      res.Kind,
	})
}

// MeasurePackage handles POST /v1/packages/measurements - measures a package.
func (s *Server) MeasurePackage(ctx echo.Context) error {
	var body servers.MeasurePackageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewMeasurePackageQuery(packageDescription(body))
	if err != nil {
		return errorResponse(ctx, err)
	}

	res, err := s.measurePackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageMeasurement(res))
}

// PackShipment handles POST /v1/shipments/pack - packs order lines into parcels.
func (s *Server) PackShipment(ctx echo.Context) error {
	var body servers.PackShipmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]services.LineItem, 0, len(body.Items))
	for _, line := range body.Items {
		item, err := services.NewLineItem(line.Quantity, line.Grams, moneyValue(line.Price))
		if err != nil {
			return errorResponse(ctx, err)
		}
		items = append(items, item)
	}

	var dimensions []float64
	if body.Dimensions != nil {
		dimensions = *body.Dimensions
	}

	cmd, err := commands.NewPackShipmentCommand(items, dimensions, body.MaxWeightGrams, deref(body.Currency))
	if err != nil {
		return errorResponse(ctx, err)
	}

	batch, err := s.packShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := packedShipment(batch)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

func packageDescription(body servers.PackageRequest) queries.PackageDescription {
	desc := queries.PackageDescription{
		Weight:   amount(body.Weight),
		Value:    moneyValue(body.Value),
		Currency: deref(body.Currency),
	}
	if body.Dimensions != nil {
		for _, d := range *body.Dimensions {
			desc.Dimensions = append(desc.Dimensions, amount(d))
		}
	}
	if body.Units != nil {
		desc.Units = string(*body.Units)
	}
	if body.Cylinder != nil {
		desc.Cylinder = *body.Cylinder
	}
	return desc
}

func packageMeasurement(res queries.MeasurePackageQueryResponse) servers.PackageMeasurement {
	out := servers.PackageMeasurement{
		UnitSystem:      res.UnitSystem,
		WeightSystem:    res.WeightSystem,
		DimensionSystem: res.DimensionSystem,
		Actual:          weightReading(res.Actual),
		Volumetric:      weightReading(res.Volumetric),
		Billable:        weightReading(res.Billable),
		Dimensions:      make([]servers.LengthReading, len(res.Dimensions)),
		Girth:           lengthReading(res.Girth),
		Volume:          lengthReading(res.Volume),
		BoxVolume:       lengthReading(res.BoxVolume),
		ValueCents:      res.Value,
		Cylinder:        res.Cylinder,
	}
	for i, d := range res.Dimensions {
		out.Dimensions[i] = lengthReading(d)
	}
	if res.Currency != "" {
		currency := res.Currency
		out.Currency = &currency
	}
	return out
}

func packedShipment(batch *shipment.PackedBatch) (servers.PackedShipment, error) {
	out := servers.PackedShipment{
		Id:           batch.ID().Value(),
		Currency:     batch.Currency(),
		PackageCount: batch.Count(),
		TotalGrams:   batch.TotalGrams(),
		TotalCents:   batch.TotalCents(),
		Packages:     make([]servers.PackedPackage, 0, batch.Count()),
	}

	for _, pkg := range batch.Packages() {
		grams, err := pkg.Grams(parcel.Actual)
		if err != nil {
			return servers.PackedShipment{}, err
		}
		billable, err := pkg.Grams(parcel.Billable)
		if err != nil {
			return servers.PackedShipment{}, err
		}
		cents, _ := pkg.Value()
		dims := pkg.AllCentimetres()

		out.Packages = append(out.Packages, servers.PackedPackage{
			Grams:         grams,
			BillableGrams: billable,
			ValueCents:    cents,
			DimensionsCm:  dims[:],
		})
	}
	return out, nil
}

func amount(a servers.Amount) queries.Amount {
	return queries.Amount{Value: a.Value, Unit: deref(a.Unit)}
}

func weightReading(w queries.WeightReading) servers.WeightReading {
	return servers.WeightReading{Amount: w.Amount, Unit: w.Unit, Grams: w.Grams, Ounces: w.Ounces}
}

func lengthReading(l queries.LengthReading) servers.LengthReading {
	return servers.LengthReading{Centimetres: l.Centimetres, Inches: l.Inches}
}

// moneyValue returns nil for a missing amount so that no value is recorded.
func moneyValue(m *servers.Money) any {
	if m == nil {
		return nil
	}
	return string(*m)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
