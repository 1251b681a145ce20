package cmd

import (
	"time"

	"github.com/riosgabriel/taq-u-app/internal/adapters/out/postgres/customerrepo"
	"github.com/riosgabriel/taq-u-app/internal/adapters/out/postgres/driverrepo"
	"github.com/riosgabriel/taq-u-app/internal/adapters/out/postgres/orderrepo"
	"github.com/riosgabriel/taq-u-app/internal/core/application/queries"
	"github.com/riosgabriel/taq-u-app/internal/core/application/services"
	"github.com/riosgabriel/taq-u-app/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultTrackingCacheTTL applies when TRACKING_CACHE_TTL is unset or unparsable.
const defaultTrackingCacheTTL = time.Minute

// CompositionRoot wires concrete adapters into the application layer.
// It is the single place where implementations are chosen; everything
// downstream depends only on the ports.
type CompositionRoot struct {
	gormDB           *gorm.DB
	trackingCache    ports.TrackingCache
	trackingCacheTTL time.Duration
	logger           *zap.Logger
}

// NewCompositionRoot creates the composition root from the shared resources.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	trackingCache ports.TrackingCache,
	logger *zap.Logger,
) CompositionRoot {
	ttl := defaultTrackingCacheTTL
	if config.TrackingCacheTTL != "" {
		if parsed, err := time.ParseDuration(config.TrackingCacheTTL); err == nil && parsed > 0 {
			ttl = parsed
		} else {
			logger.Warn("invalid TRACKING_CACHE_TTL, using default",
				zap.String("value", config.TrackingCacheTTL),
				zap.Duration("default", defaultTrackingCacheTTL),
			)
		}
	}

	return CompositionRoot{
		gormDB:           gormDB,
		trackingCache:    trackingCache,
		trackingCacheTTL: ttl,
		logger:           logger,
	}
}

// CreateCustomerRepository builds the GORM customer repository.
func (c *CompositionRoot) CreateCustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(c.gormDB, c.logger)
}

// CreateDriverRepository builds the GORM driver repository.
func (c *CompositionRoot) CreateDriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(c.gormDB, c.logger)
}

// CreateOrderRepository builds the GORM order repository.
func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, c.logger)
}

// CreateCustomerService builds the customer service with its repository.
func (c *CompositionRoot) CreateCustomerService() *services.CustomerService {
	return services.NewCustomerService(c.CreateCustomerRepository())
}

// CreateDriverService builds the driver service with its repository.
func (c *CompositionRoot) CreateDriverService() *services.DriverService {
	return services.NewDriverService(c.CreateDriverRepository())
}

// CreateOrderService builds the order service. It receives both the order and
// the customer repositories because order creation checks customer existence.
func (c *CompositionRoot) CreateOrderService() *services.OrderService {
	return services.NewOrderService(c.CreateOrderRepository(), c.CreateCustomerRepository(), c.logger)
}

// CreateTrackPackageQueryHandler builds the cache-fronted tracking lookup.
func (c *CompositionRoot) CreateTrackPackageQueryHandler() queries.TrackPackageQueryHandler {
	return queries.NewTrackPackageQueryHandler(c.gormDB, c.trackingCache, c.trackingCacheTTL, c.logger)
}

// CreatePendingOrdersQueryHandler builds the pending-orders read model.
func (c *CompositionRoot) CreatePendingOrdersQueryHandler() queries.PendingOrdersQueryHandler {
	return queries.NewPendingOrdersQueryHandler(c.gormDB, c.logger)
}
