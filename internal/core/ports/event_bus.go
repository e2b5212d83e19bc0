package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
)

// EventBus reliably publishes domain events. Ordering of events within one
// Publish call is preserved; ordering across separate calls is not
// guaranteed. At-least-once delivery is acceptable — the production
// implementation stages events in an outbox table inside the same
// transaction as the aggregate write.
type EventBus interface {
	Publish(ctx context.Context, events []kernel.DomainEvent) error
}

// EventRelay forwards a staged domain event to its final destination, such
// as a message broker. The outbox dispatcher marks a message published only
// after Deliver returns nil, so implementations may be retried with the
// same event.
type EventRelay interface {
	Deliver(ctx context.Context, event kernel.DomainEvent) error
}
