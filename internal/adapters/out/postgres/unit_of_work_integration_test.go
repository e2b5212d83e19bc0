package postgres_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the order write and the
// outbox event write share one transaction.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &outboxrepo.MessageDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, outbox").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	item, err := order.NewItem("prod-1", "Widget", 1, 10, nil)
	suite.Require().NoError(err)

	newOrder, err := order.NewOrder(kernel.NewUUID(), "cust-1", []order.Item{item}, nil)
	suite.Require().NoError(err)
	return newOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndOutboxTogether() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	newOrder := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))

	event, err := order.NewCreatedEvent(newOrder, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.EventBus().Publish(ctx, []kernel.DomainEvent{event}))

	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := orderrepo.NewGormOrderRepository(suite.db).Get(ctx, newOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(newOrder.ID()))

	messages, err := outboxrepo.NewGormOutboxStore(suite.db).FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal(order.EventCreated, messages[0].Type)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndOutboxTogether() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	newOrder := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))

	event, err := order.NewCreatedEvent(newOrder, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.EventBus().Publish(ctx, []kernel.DomainEvent{event}))

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = orderrepo.NewGormOrderRepository(suite.db).Get(ctx, newOrder.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	messages, err := outboxrepo.NewGormOutboxStore(suite.db).FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(messages)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMarkPublished_RemovesMessageFromBacklog() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	newOrder := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))

	first, err := order.NewCreatedEvent(newOrder, time.Now().UTC())
	suite.Require().NoError(err)
	second, err := order.NewItemAddedEvent(newOrder, "prod-1", 1, 10, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.EventBus().Publish(ctx, []kernel.DomainEvent{first, second}))
	suite.Require().NoError(uow.Commit(ctx))

	store := outboxrepo.NewGormOutboxStore(suite.db)

	messages, err := store.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.Equal(order.EventCreated, messages[0].Type)
	suite.Equal(order.EventItemAdded, messages[1].Type)
	suite.Less(messages[0].Sequence, messages[1].Sequence)

	suite.Require().NoError(store.MarkPublished(ctx, messages[0].ID, time.Now().UTC()))

	remaining, err := store.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(order.EventItemAdded, remaining[0].Type)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
