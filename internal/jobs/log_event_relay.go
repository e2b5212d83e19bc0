package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
)

// LogEventRelay delivers events to the application log. Stands in for a
// broker publisher in deployments that have no broker yet; downstream
// consumers tail the log.
type LogEventRelay struct {
	logger *slog.Logger
}

// NewLogEventRelay creates a relay writing to the given logger.
func NewLogEventRelay(logger *slog.Logger) *LogEventRelay {
	return &LogEventRelay{logger: logger.With("component", "event_relay")}
}

// Deliver logs the event. Never fails, so every message is marked published
// on the first run.
func (r *LogEventRelay) Deliver(ctx context.Context, event kernel.DomainEvent) error {
	r.logger.InfoContext(ctx, "Domain event published",
		"eventType", event.Type, "occurredAt", event.OccurredAt, "payload", event.Payload)
	return nil
}
