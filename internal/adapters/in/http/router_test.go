package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/metrics"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/domain/services"
	"shipping/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type RouterTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)

	registry, err := measure.NewStandardRegistry(measure.WithRateObserver(recorder))
	s.Require().NoError(err)

	packer, err := services.NewShipmentPacker(registry, services.WithMaxPackages(5))
	s.Require().NoError(err)

	server := api.NewServer(
		commands.NewPackShipmentCommandHandler(packer, recorder, zap.NewNop(), "USD"),
		queries.NewConvertQuantityQueryHandler(registry),
		queries.NewListUnitsQueryHandler(registry),
		queries.NewMeasurePackageQueryHandler(registry),
	)

	s.e, err = api.NewRouter(server, zap.NewNop(), reg)
	s.Require().NoError(err)
}

func (s *RouterTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *RouterTestSuite) TestRoutesOutsideTheDocument() {
	cases := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"swagger", http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{"unknown path", http.MethodGet, "/v1/parcels", http.StatusNotFound},
		{"wrong method", http.MethodPost, "/v1/conversions", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(tc.method, tc.target, "")
			s.Equal(tc.status, rec.Code, rec.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestListUnits() {
	rec := s.do(http.MethodGet, "/v1/units/mass", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var list servers.UnitList
	s.decode(rec, &list)
	s.Equal("mass", list.Kind)
	s.ElementsMatch([]string{"gram", "ounce"}, list.Primitives)
	s.Require().Len(list.Systems, 2)
	s.Equal("metric", list.Systems[0].System)
	s.Equal("gram", list.Systems[0].Units[0].Name)
	s.Contains(list.Systems[0].Units[0].Aliases, "g")
}

func (s *RouterTestSuite) TestListUnits_UnknownKind() {
	rec := s.do(http.MethodGet, "/v1/units/volume", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	var body servers.Error
	s.decode(rec, &body)
	s.Equal(http.StatusBadRequest, body.Code)
}

func (s *RouterTestSuite) TestConvertQuantity() {
	rec := s.do(http.MethodGet, "/v1/conversions?amount=2&from=kg&to=lb", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var conv servers.Conversion
	s.decode(rec, &conv)
	s.Equal("kilogram", conv.From)
	s.Equal("pound", conv.To)
	s.Equal("mass", conv.Kind)
	s.InDelta(2000/measure.GramsPerOunce/16, conv.Converted, 1e-9)
}

func (s *RouterTestSuite) TestConvertQuantity_Errors() {
	cases := []struct {
		name   string
		target string
		status int
	}{
		{"missing parameter", "/v1/conversions?amount=2&from=kg", http.StatusBadRequest},
		{"non-numeric amount", "/v1/conversions?amount=two&from=kg&to=lb", http.StatusBadRequest},
		{"unknown unit", "/v1/conversions?amount=2&from=kg&to=furlong", http.StatusNotFound},
		{"different kinds", "/v1/conversions?amount=2&from=kg&to=cm", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodGet, tc.target, "")
			s.Equal(tc.status, rec.Code, rec.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestMeasurePackage() {
	rec := s.do(http.MethodPost, "/v1/packages/measurements",
		`{"weight":{"value":500,"unit":"g"},"dimensions":[{"value":30},{"value":20},{"value":10}],"value":"12.50","currency":"eur"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var m servers.PackageMeasurement
	s.decode(rec, &m)
	s.Equal("metric", m.UnitSystem)
	s.InDelta(500, m.Actual.Grams, 1e-9)
	s.InDelta(1000, m.Billable.Grams, 1e-9)
	s.Require().Len(m.Dimensions, 3)
	s.InDelta(10, m.Dimensions[0].Centimetres, 1e-9)
	s.Require().NotNil(m.ValueCents)
	s.Equal(int64(1250), *m.ValueCents)
	s.Require().NotNil(m.Currency)
	s.Equal("EUR", *m.Currency)
}

func (s *RouterTestSuite) TestMeasurePackage_Invalid() {
	cases := []struct {
		name string
		body string
	}{
		{"missing weight", `{"dimensions":[{"value":1}]}`},
		{"too many dimensions", `{"weight":{"value":1},"dimensions":[{"value":1},{"value":2},{"value":3},{"value":4}]}`},
		{"negative weight", `{"weight":{"value":-1}}`},
		{"unknown system", `{"weight":{"value":1},"units":"nautical"}`},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/v1/packages/measurements", tc.body)
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestPackShipment() {
	rec := s.do(http.MethodPost, "/v1/shipments/pack",
		`{"items":[{"quantity":2,"grams":600,"price":"10.00"},{"quantity":1,"grams":300,"price":250}],"maxWeightGrams":1000,"dimensions":[10,20,30]}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var shipped servers.PackedShipment
	s.decode(rec, &shipped)
	s.Equal("USD", shipped.Currency)
	s.Equal(2, shipped.PackageCount)
	s.Require().Len(shipped.Packages, 2)
	s.InDelta(600, shipped.Packages[0].Grams, 1e-9)
	s.InDelta(900, shipped.Packages[1].Grams, 1e-9)
	s.Equal(int64(1000), shipped.Packages[0].ValueCents)
	s.Equal(int64(1250), shipped.Packages[1].ValueCents)
	s.Equal([]float64{10, 20, 30}, shipped.Packages[0].DimensionsCm)
	s.InDelta(1500, shipped.TotalGrams, 1e-9)
	s.Equal(int64(2250), shipped.TotalCents)
	s.NotEmpty(shipped.Id.String())
}

func (s *RouterTestSuite) TestPackShipment_Rejected() {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"overweight item", `{"items":[{"quantity":1,"grams":1500}],"maxWeightGrams":1000}`, http.StatusUnprocessableEntity},
		{"too many packages", `{"items":[{"quantity":6,"grams":1000}],"maxWeightGrams":1000}`, http.StatusUnprocessableEntity},
		{"zero maximum", `{"items":[{"quantity":1,"grams":1}],"maxWeightGrams":0}`, http.StatusBadRequest},
		{"bad currency", `{"items":[],"maxWeightGrams":10,"currency":"dollars"}`, http.StatusBadRequest},
		{"malformed body", `{"items":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/v1/shipments/pack", tc.body)
			s.Equal(tc.status, rec.Code, rec.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestMetrics() {
	s.do(http.MethodGet, "/v1/conversions?amount=1&from=kg&to=lb", "")
	s.do(http.MethodPost, "/v1/shipments/pack", `{"items":[{"quantity":1,"grams":10}],"maxWeightGrams":100}`)

	rec := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "shipping_conversion_rate_lookups_total")
	s.Contains(rec.Body.String(), `shipping_packing_requests_total{result="packed"} 1`)
}

func (s *RouterTestSuite) TestSwagger() {
	rec := s.do(http.MethodGet, "/swagger/doc.json", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/v1/shipments/pack")
}
