package commands_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventBus struct{ mock.Mock }

func (m *MockEventBus) Publish(ctx context.Context, events []kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) EventBus() ports.EventBus {
	args := m.Called()
	return args.Get(0).(ports.EventBus)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPricingService struct{ mock.Mock }

func (m *MockPricingService) GetCurrentPrice(ctx context.Context, sku string, currency kernel.Currency) (kernel.Money, error) {
	args := m.Called(ctx, sku, currency)
	return args.Get(0).(kernel.Money), args.Error(1)
}

// fixedClock returns the same instant on every call, keeping event
// timestamps deterministic in tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func testClock() fixedClock {
	return fixedClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func storedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem("prod-1", "Widget", 1, 10, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(id, "cust-1", []order.Item{item}, nil)
	require.NoError(t, err)
	return o
}

func floatPtr(v float64) *float64 { return &v }
