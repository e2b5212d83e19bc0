package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrderQueryHandler serves single-order reads straight from the
// repository, returning the order as a flat snapshot read model.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle executes the query. A missing order fails with an
// ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	existing, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}

	return existing.Snapshot(), nil
}
