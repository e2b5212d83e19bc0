package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	items := []commands.NewOrderItem{
		{ProductID: "prod-1", Name: "Widget", Quantity: 2, UnitPrice: 10},
	}

	t.Run("creates order and publishes created event in one unit of work", func(t *testing.T) {
		repo := &MockOrderRepository{}
		bus := &MockEventBus{}
		uow := &MockOrderUoW{}
		factory := &MockOrderUoWFactory{}
		clock := testClock()

		factory.On("Create").Return(uow)
		uow.On("OrderRepository").Return(repo)
		uow.On("EventBus").Return(bus)

		var saved *order.Order
		mock.InOrder(
			uow.On("Begin", mock.Anything).Return(nil),
			repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) {
					saved = args.Get(1).(*order.Order)
				}).Return(nil),
			bus.On("Publish", mock.Anything, mock.AnythingOfType("[]kernel.DomainEvent")).Return(nil),
			uow.On("Commit", mock.Anything).Return(nil),
			uow.On("Rollback", mock.Anything).Return(nil),
		)

		cmd, err := commands.NewCreateOrderCommand("", "cust-1", items)
		require.NoError(t, err)

		handler := commands.NewCreateOrderCommandHandler(factory, clock)
		orderID, err := handler.Handle(t.Context(), cmd)
		require.NoError(t, err)

		assert.False(t, orderID.IsZero())
		require.NotNil(t, saved)
		assert.True(t, saved.ID().IsEqual(orderID))
		assert.Equal(t, "cust-1", saved.CustomerID())
		assert.Equal(t, order.Pending, saved.Status())
		assert.InDelta(t, 20.0, saved.Total(), 1e-9)

		events := bus.Calls[0].Arguments.Get(1).([]kernel.DomainEvent)
		require.Len(t, events, 1)
		assert.Equal(t, order.EventCreated, events[0].Type)
		assert.Equal(t, clock.Now(), events[0].OccurredAt)

		mock.AssertExpectationsForObjects(t, factory, uow, repo, bus)
	})

	t.Run("explicit id that already exists fails with conflict", func(t *testing.T) {
		repo := &MockOrderRepository{}
		uow := &MockOrderUoW{}
		factory := &MockOrderUoWFactory{}

		existingID := kernel.NewUUID()

		factory.On("Create").Return(uow)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", mock.Anything).Return(nil)
		repo.On("Get", mock.Anything, existingID).Return(storedOrder(t, existingID), nil)

		cmd, err := commands.NewCreateOrderCommand(existingID.String(), "cust-1", items)
		require.NoError(t, err)

		handler := commands.NewCreateOrderCommandHandler(factory, testClock())
		_, err = handler.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrConflict)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("explicit id that is free is used as the order id", func(t *testing.T) {
		repo := &MockOrderRepository{}
		bus := &MockEventBus{}
		uow := &MockOrderUoW{}
		factory := &MockOrderUoWFactory{}

		freeID := kernel.NewUUID()

		factory.On("Create").Return(uow)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("EventBus").Return(bus)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		repo.On("Get", mock.Anything, freeID).
			Return(nil, errs.NewObjectNotFoundError("order", freeID.String()))
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		cmd, err := commands.NewCreateOrderCommand(freeID.String(), "cust-1", items)
		require.NoError(t, err)

		handler := commands.NewCreateOrderCommandHandler(factory, testClock())
		orderID, err := handler.Handle(t.Context(), cmd)
		require.NoError(t, err)

		assert.True(t, orderID.IsEqual(freeID))
	})

	t.Run("existence check failure other than not found is propagated", func(t *testing.T) {
		repo := &MockOrderRepository{}
		uow := &MockOrderUoW{}
		factory := &MockOrderUoWFactory{}

		id := kernel.NewUUID()
		infraErr := errs.NewInfrastructureError("get order", errors.New("connection reset"))

		factory.On("Create").Return(uow)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", mock.Anything).Return(nil)
		repo.On("Get", mock.Anything, id).Return(nil, infraErr)

		cmd, err := commands.NewCreateOrderCommand(id.String(), "cust-1", items)
		require.NoError(t, err)

		handler := commands.NewCreateOrderCommandHandler(factory, testClock())
		_, err = handler.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrInfrastructure)
	})

	t.Run("publish failure rolls back without commit", func(t *testing.T) {
		repo := &MockOrderRepository{}
		bus := &MockEventBus{}
		uow := &MockOrderUoW{}
		factory := &MockOrderUoWFactory{}

		publishErr := errors.New("outbox insert failed")

		factory.On("Create").Return(uow)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("EventBus").Return(bus)
		uow.On("Rollback", mock.Anything).Return(nil)
		repo.On("Add", mock.Anything, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(publishErr)

		cmd, err := commands.NewCreateOrderCommand("", "cust-1", items)
		require.NoError(t, err)

		handler := commands.NewCreateOrderCommandHandler(factory, testClock())
		_, err = handler.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, publishErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertCalled(t, "Rollback", mock.Anything)
	})

	t.Run("invalid command never opens a unit of work", func(t *testing.T) {
		factory := &MockOrderUoWFactory{}

		handler := commands.NewCreateOrderCommandHandler(factory, testClock())
		_, err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

		assert.Error(t, err)
		factory.AssertNotCalled(t, "Create")
	})
}
