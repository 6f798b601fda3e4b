package cmd

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"gorm.io/gorm"

	adapterhttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services/routing"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
)

const defaultScheduleRefreshCron = "*/5 * * * *"

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	settings   routing.Settings
	logger     *slog.Logger
	planCache  *jobs.PlanCache
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		settings:   routingSettings(configs),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		planCache:  jobs.NewPlanCache(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.createGeocoder())
}

func (c *CompositionRoot) CreateSeedDemoOrdersCommandHandler() (commands.SeedDemoOrdersCommandHandler, error) {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedDemoOrdersCommandHandler(f, newRng())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateComputeDispatchPlanQueryHandler() (queries.ComputeDispatchPlanQueryHandler, error) {
	orderSource := orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
	return queries.NewComputeDispatchPlanQueryHandler(orderSource, c.settings, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	planHandler, err := c.CreateComputeDispatchPlanQueryHandler()
	if err != nil {
		return nil, err
	}

	refreshSpec := c.configs.ScheduleRefreshCron
	if refreshSpec == "" {
		refreshSpec = defaultScheduleRefreshCron
	}

	return jobs.NewJobManager(planHandler, c.planCache, refreshSpec, c.logger), nil
}

func (c *CompositionRoot) CreateWebServer() (*adapterhttp.Server, error) {
	seedOrdersHandler, err := c.CreateSeedDemoOrdersCommandHandler()
	if err != nil {
		return nil, err
	}

	computePlanHandler, err := c.CreateComputeDispatchPlanQueryHandler()
	if err != nil {
		return nil, err
	}

	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		seedOrdersHandler,
		c.CreateGetAllOrdersQueryHandler(),
		computePlanHandler,
		c.planCache,
	), nil
}

func (c *CompositionRoot) createGeocoder() ports.Geocoder {
	if c.configs.GeocoderBaseURL != "" {
		return geo.NewHTTPGeocoder(geo.WithBaseURL(c.configs.GeocoderBaseURL))
	}
	return geo.NewHTTPGeocoder()
}

func routingSettings(configs Config) routing.Settings {
	settings := routing.DefaultSettings()
	if configs.AvoidSmallTrucks == "true" {
		settings.AvoidSmallTrucks = true
	}
	if configs.PoolKeyMode == "no_exposure" {
		settings.PoolKey = routing.PoolKeyNoExposure
	}
	return settings
}

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// noopTracker backs read-only repository instances that never take part in a
// unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
