package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"logix/internal/adapters/out/postgres"
	"logix/internal/adapters/out/routeai"
	"logix/internal/core/application/usecases/commands"
	"logix/internal/core/application/usecases/queries"
	"logix/internal/core/domain/services"
	"logix/internal/core/ports"
	"logix/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	optimizer  ports.RouteOptimizer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		optimizer:  buildRouteOptimizer(config, logger),
		logger:     logger,
	}
}

// buildRouteOptimizer wires the AI optimizer from configuration. Without a
// base URL the optimizer still works, planning every route locally.
func buildRouteOptimizer(config Config, logger *slog.Logger) ports.RouteOptimizer {
	var client *routeai.Client
	if config.RouteAIBaseURL != "" {
		var err error
		client, err = routeai.NewClient(config.RouteAIBaseURL, nil)
		if err != nil {
			logger.Warn("route optimization client misconfigured, using fallback only", "error", err)
		}
	}

	var cache routeai.ResultCache
	if config.RedisHost != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: config.RedisHost})
		redisCache, err := routeai.NewRedisResultCache(redisClient, 0)
		if err != nil {
			logger.Warn("route result cache misconfigured, running without cache", "error", err)
		} else {
			cache = redisCache
		}
	}

	var timeout time.Duration
	if ms, err := strconv.Atoi(config.RouteAITimeoutMs); err == nil && ms > 0 {
		timeout = time.Duration(ms) * time.Millisecond
	}

	return routeai.NewOptimizer(client, cache, timeout, logger)
}

func (c *CompositionRoot) CreateOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.CreateOrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.CreateOrderUoWFactory())
}

func (c *CompositionRoot) CreateProcessNewOrderCommandHandler() commands.ProcessNewOrderCommandHandler {
	var f commands.AutomationUoWFactory = FuncAutomationUoWFactory(func() commands.AutomationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessNewOrderCommandHandler(
		f,
		services.NewOrderValidator(),
		services.NewFulfillmentEstimator(),
		services.NewWarehouseRouter(),
		services.NewDriverAssigner(),
	)
}

func (c *CompositionRoot) CreateOptimizeRouteCommandHandler() commands.OptimizeRouteCommandHandler {
	var f commands.RoutingUoWFactory = FuncRoutingUoWFactory(func() commands.RoutingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOptimizeRouteCommandHandler(f, c.optimizer)
}

func (c *CompositionRoot) CreateGetManualHandlingOrdersQueryHandler() queries.GetManualHandlingOrdersQueryHandler {
	return queries.NewGetManualHandlingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnfulfilledOrdersQueryHandler() queries.GetUnfulfilledOrdersQueryHandler {
	return queries.NewGetUnfulfilledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateOrderUoWFactory(),
		c.CreateProcessNewOrderCommandHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRoutingUoWFactory func() commands.RoutingUoW

func (f FuncRoutingUoWFactory) Create() commands.RoutingUoW {
	return f()
}

type FuncAutomationUoWFactory func() commands.AutomationUoW

func (f FuncAutomationUoWFactory) Create() commands.AutomationUoW {
	return f()
}
