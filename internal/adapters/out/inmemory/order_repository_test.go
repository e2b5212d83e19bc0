package inmemory_test

import (
	"testing"
	"time"

	"orders/internal/adapters/out/inmemory"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem("prod-1", "Widget", 2, 10, nil)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "cust-1", []order.Item{item}, nil)
	require.NoError(t, err)
	return o
}

func TestOrderRepository(t *testing.T) {
	t.Run("add and get round trip", func(t *testing.T) {
		repo := inmemory.NewOrderRepository()
		original := newTestOrder(t)

		require.NoError(t, repo.Add(t.Context(), original))

		retrieved, err := repo.Get(t.Context(), original.ID())
		require.NoError(t, err)
		assert.True(t, retrieved.ID().IsEqual(original.ID()))
		assert.Equal(t, "cust-1", retrieved.CustomerID())
		assert.InDelta(t, 20.0, retrieved.Total(), 1e-9)
	})

	t.Run("stored order is isolated from later mutation", func(t *testing.T) {
		repo := inmemory.NewOrderRepository()
		original := newTestOrder(t)
		require.NoError(t, repo.Add(t.Context(), original))

		// Mutating the aggregate after Add must not leak into the store.
		require.NoError(t, original.Confirm())

		retrieved, err := repo.Get(t.Context(), original.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Pending, retrieved.Status())
	})

	t.Run("add duplicate id fails with conflict", func(t *testing.T) {
		repo := inmemory.NewOrderRepository()
		original := newTestOrder(t)
		require.NoError(t, repo.Add(t.Context(), original))

		err := repo.Add(t.Context(), original)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("get missing order fails with not found", func(t *testing.T) {
		repo := inmemory.NewOrderRepository()

		_, err := repo.Get(t.Context(), kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("update replaces the stored order", func(t *testing.T) {
		repo := inmemory.NewOrderRepository()
		original := newTestOrder(t)
		require.NoError(t, repo.Add(t.Context(), original))

		require.NoError(t, original.Confirm())
		require.NoError(t, repo.Update(t.Context(), original))

		retrieved, err := repo.Get(t.Context(), original.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, retrieved.Status())
	})

	t.Run("concurrent update of the same version fails as stale", func(t *testing.T) {
		repo := inmemory.NewOrderRepository()
		original := newTestOrder(t)
		require.NoError(t, repo.Add(t.Context(), original))

		copyA, err := repo.Get(t.Context(), original.ID())
		require.NoError(t, err)
		copyB, err := repo.Get(t.Context(), original.ID())
		require.NoError(t, err)

		require.NoError(t, copyA.Confirm())
		require.NoError(t, repo.Update(t.Context(), copyA))

		require.NoError(t, copyB.MarkPaid())
		err = repo.Update(t.Context(), copyB)

		var staleErr *errs.StaleObjectError
		require.ErrorAs(t, err, &staleErr)

		// The first writer's change survives.
		retrieved, err := repo.Get(t.Context(), original.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, retrieved.Status())
	})

	t.Run("update missing order fails with not found", func(t *testing.T) {
		repo := inmemory.NewOrderRepository()

		err := repo.Update(t.Context(), newTestOrder(t))
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("delete removes the order", func(t *testing.T) {
		repo := inmemory.NewOrderRepository()
		original := newTestOrder(t)
		require.NoError(t, repo.Add(t.Context(), original))

		require.NoError(t, repo.Delete(t.Context(), original.ID()))

		_, err := repo.Get(t.Context(), original.ID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)

		err = repo.Delete(t.Context(), original.ID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestEventBus(t *testing.T) {
	bus := inmemory.NewEventBus()

	event, err := kernel.NewDomainEvent("order.created", nil, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, bus.Publish(t.Context(), []kernel.DomainEvent{event}))
	require.NoError(t, bus.Publish(t.Context(), nil))

	published := bus.Published()
	require.Len(t, published, 1)
	assert.Equal(t, "order.created", published[0].Type)
}
