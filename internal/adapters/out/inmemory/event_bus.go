package inmemory

import (
	"context"
	"sync"

	"orders/internal/core/domain/model/kernel"
)

// EventBus collects published domain events in memory. Tests use
// Published() to assert on what a use case emitted.
type EventBus struct {
	mu     sync.Mutex
	events []kernel.DomainEvent
}

// NewEventBus creates an empty in-memory event bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Publish appends the events in the order given.
func (b *EventBus) Publish(_ context.Context, events []kernel.DomainEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, events...)
	return nil
}

// Published returns a copy of all events published so far.
func (b *EventBus) Published() []kernel.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]kernel.DomainEvent, len(b.events))
	copy(out, b.events)
	return out
}
