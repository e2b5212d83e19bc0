package cmd

import (
	"log/slog"
	"os"
	"time"

	"orders/internal/adapters/out/inmemory"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/adapters/out/pricingsvc"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. All dependency
// decisions live here; the rest of the application receives interfaces.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  ports.UnitOfWorkFactory
	orderReader ports.OrderRepository
	pricing     ports.PricingService
	clock       ports.Clock
	logger      *slog.Logger
}

// NewCompositionRoot builds the object graph for the selected storage
// backend. gormDB is nil for the in-memory backend.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		gormDB:  gormDB,
		pricing: pricingsvc.NewClient(config.PricingServiceURL),
		clock:   systemClock{},
		logger:  slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.orderReader = orderrepo.NewGormOrderRepository(gormDB)
	} else {
		repo := inmemory.NewOrderRepository()
		root.uowFactory = inmemory.NewUnitOfWorkFactory(repo, inmemory.NewEventBus())
		root.orderReader = repo
	}

	return root
}

// Logger returns the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddItemToOrderCommandHandler() commands.AddItemToOrderCommandHandler {
	return commands.NewAddItemToOrderCommandHandler(c.orderUoWFactory(), c.pricing, c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader)
}

// CreateOutboxDispatcherJob builds the outbox dispatcher. Only meaningful
// for the postgres backend; returns nil otherwise.
func (c *CompositionRoot) CreateOutboxDispatcherJob() *jobs.OutboxDispatcherJob {
	if c.gormDB == nil {
		return nil
	}

	return jobs.NewOutboxDispatcherJob(
		outboxrepo.NewGormOutboxStore(c.gormDB),
		jobs.NewLogEventRelay(c.logger),
		c.clock,
		c.logger,
	)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
