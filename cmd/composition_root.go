package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpin "storecourier/internal/adapters/in/http"
	"storecourier/internal/adapters/out/cache/lrucache"
	"storecourier/internal/adapters/out/cache/rediscache"
	"storecourier/internal/adapters/out/courier"
	"storecourier/internal/adapters/out/geocoding"
	"storecourier/internal/adapters/out/memory/flowrepo"
	"storecourier/internal/adapters/out/postgres"
	"storecourier/internal/adapters/out/postgres/directoryrepo"
	"storecourier/internal/core/application/addressing"
	"storecourier/internal/core/application/usecases/commands"
	"storecourier/internal/core/application/usecases/queries"
	"storecourier/internal/core/domain/services"
	"storecourier/internal/core/ports"
	"storecourier/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	directory  *directoryrepo.GormDirectoryRepository
	flows      *flowrepo.InMemoryFlowRepository
	normalizer *addressing.Normalizer
	gateway    ports.CourierGateway
	location   *time.Location
	clock      commands.Clock
	redis      *redis.Client
	logger     *slog.Logger
}

// NewCompositionRoot connects to Redis when REDIS_ADDR is set and uses the in-process
// LRU address cache otherwise.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", config.Timezone, err)
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  directoryrepo.NewGormDirectoryRepository(gormDB),
		flows:      flowrepo.NewInMemoryFlowRepository(),
		location:   location,
		clock:      func() time.Time { return time.Now().In(location) },
		logger:     logger,
	}

	var cache ports.AddressCache
	if config.RedisAddr != "" {
		c.redis, err = rediscache.NewClient(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		cache = rediscache.NewAddressCache(c.redis, logger)
	} else {
		cache = lrucache.NewAddressCache(config.AddressCacheSize, config.AddressCacheTTL)
	}

	c.normalizer = addressing.NewNormalizer(
		geocoding.NewClient(config.GeocodingURL, &http.Client{}),
		cache,
		config.AddressCacheTTL,
		config.GeocodingTimeout,
		logger,
	)
	c.gateway = courier.NewClient(config.CourierURL, config.CourierToken, &http.Client{})

	return c, nil
}

// Close releases the Redis connection, if any.
func (c *CompositionRoot) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

func (c *CompositionRoot) DirectoryRepository() *directoryrepo.GormDirectoryRepository {
	return c.directory
}

func (c *CompositionRoot) CreateStartFlowCommandHandler() commands.StartFlowCommandHandler {
	return commands.NewStartFlowCommandHandler(c.directory, c.flows, c.clock)
}

func (c *CompositionRoot) CreateChooseDeliveryTypeCommandHandler() commands.ChooseDeliveryTypeCommandHandler {
	return commands.NewChooseDeliveryTypeCommandHandler(c.flows, c.clock)
}

func (c *CompositionRoot) CreateSelectStoreCommandHandler() commands.SelectStoreCommandHandler {
	return commands.NewSelectStoreCommandHandler(c.flows, c.clock)
}

func (c *CompositionRoot) CreateEnterDetailsCommandHandler() commands.EnterDetailsCommandHandler {
	return commands.NewEnterDetailsCommandHandler(c.flows, c.clock)
}

func (c *CompositionRoot) CreateNavigateBackCommandHandler() commands.NavigateBackCommandHandler {
	return commands.NewNavigateBackCommandHandler(c.flows, c.clock)
}

func (c *CompositionRoot) CreateRestartFlowCommandHandler() commands.RestartFlowCommandHandler {
	return commands.NewRestartFlowCommandHandler(c.flows, c.clock)
}

func (c *CompositionRoot) CreateReapIdleFlowsCommandHandler() commands.ReapIdleFlowsCommandHandler {
	return commands.NewReapIdleFlowsCommandHandler(c.flows, c.clock)
}

func (c *CompositionRoot) CreateSubmitDeliveryRequestCommandHandler() commands.SubmitDeliveryRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDeliveryRequestCommandHandler(
		c.flows,
		c.normalizer,
		services.NewRequestEncoder(c.clock, c.location),
		c.gateway,
		f,
		c.config.CourierTimeout,
		c.clock,
		c.location,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetFlowQueryHandler() queries.GetFlowQueryHandler {
	return queries.NewGetFlowQueryHandler(c.flows)
}

func (c *CompositionRoot) CreateSearchStoresQueryHandler() queries.SearchStoresQueryHandler {
	return queries.NewSearchStoresQueryHandler(c.flows)
}

func (c *CompositionRoot) CreateListManagersQueryHandler() queries.ListManagersQueryHandler {
	return queries.NewListManagersQueryHandler(c.flows)
}

func (c *CompositionRoot) CreateListSubmittedRequestsQueryHandler() queries.ListSubmittedRequestsQueryHandler {
	return queries.NewListSubmittedRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		StartFlow:             c.CreateStartFlowCommandHandler(),
		ChooseDeliveryType:    c.CreateChooseDeliveryTypeCommandHandler(),
		SelectStore:           c.CreateSelectStoreCommandHandler(),
		EnterDetails:          c.CreateEnterDetailsCommandHandler(),
		NavigateBack:          c.CreateNavigateBackCommandHandler(),
		RestartFlow:           c.CreateRestartFlowCommandHandler(),
		Submit:                c.CreateSubmitDeliveryRequestCommandHandler(),
		GetFlow:               c.CreateGetFlowQueryHandler(),
		SearchStores:          c.CreateSearchStoresQueryHandler(),
		ListManagers:          c.CreateListManagersQueryHandler(),
		ListSubmittedRequests: c.CreateListSubmittedRequestsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReapIdleFlowsCommandHandler(),
		c.config.FlowReaperSchedule,
		c.config.FlowIdleTTL,
		c.logger,
	)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}
