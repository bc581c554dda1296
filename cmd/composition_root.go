package cmd

import (
	"fmt"

	"shipping/internal/adapters/in/cli"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/metrics"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/measure"
	"shipping/internal/core/domain/services"
	"shipping/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// CompositionRoot wires the core to its adapters.
type CompositionRoot struct {
	config   Config
	logger   *zap.Logger
	gatherer prometheus.Gatherer
	recorder *metrics.Recorder
	registry *measure.Registry
	packer   *services.ShipmentPacker
}

// NewCompositionRoot builds the unit registry and the packer.
// An invalid unit registry is a configuration error and fails construction.
func NewCompositionRoot(cfg Config, logger *zap.Logger, reg *prometheus.Registry) (*CompositionRoot, error) {
	recorder := metrics.NewRecorder(reg)

	registry, err := measure.NewStandardRegistry(measure.WithRateObserver(recorder))
	if err != nil {
		return nil, fmt.Errorf("unit registry: %w", err)
	}

	packer, err := services.NewShipmentPacker(registry, services.WithMaxPackages(cfg.PackerMaxPackages))
	if err != nil {
		return nil, fmt.Errorf("shipment packer: %w", err)
	}

	return &CompositionRoot{
		config:   cfg,
		logger:   logger,
		gatherer: reg,
		recorder: recorder,
		registry: registry,
		packer:   packer,
	}, nil
}

func (c *CompositionRoot) CreatePackShipmentCommandHandler() commands.PackShipmentCommandHandler {
	return commands.NewPackShipmentCommandHandler(c.packer, c.recorder, c.logger, c.config.DefaultCurrency)
}

func (c *CompositionRoot) CreateConvertQuantityQueryHandler() queries.ConvertQuantityQueryHandler {
	return queries.NewConvertQuantityQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateListUnitsQueryHandler() queries.ListUnitsQueryHandler {
	return queries.NewListUnitsQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateMeasurePackageQueryHandler() queries.MeasurePackageQueryHandler {
	return queries.NewMeasurePackageQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(
		c.CreatePackShipmentCommandHandler(),
		c.CreateConvertQuantityQueryHandler(),
		c.CreateListUnitsQueryHandler(),
		c.CreateMeasurePackageQueryHandler(),
	)
	return httpadapter.NewRouter(server, c.logger, c.gatherer)
}

func (c *CompositionRoot) CreateCLIHandlers() cli.Handlers {
	return cli.Handlers{
		PackShipment:    c.CreatePackShipmentCommandHandler(),
		ConvertQuantity: c.CreateConvertQuantityQueryHandler(),
		ListUnits:       c.CreateListUnitsQueryHandler(),
		MeasurePackage:  c.CreateMeasurePackageQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewCacheReportJob(c.registry, c.recorder, c.config.CacheReportSchedule, c.logger),
	)
}
