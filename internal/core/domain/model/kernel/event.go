package kernel

import (
	"time"

	"orders/internal/pkg/errs"
)

// DomainEvent records a fact that happened in the domain. It is created by a
// use case immediately after a successful mutation and owned by the event
// bus from the point of publication.
//
// Payload holds structured data specific to the event type, typically an
// order snapshot or a delta; it must be JSON-serializable so the outbox can
// persist it.
type DomainEvent struct {
	Type       string
	Payload    any
	OccurredAt time.Time
}

// NewDomainEvent creates a DomainEvent, requiring a non-empty type tag.
// OccurredAt comes from the Clock port so event timestamps stay
// deterministic under test.
func NewDomainEvent(eventType string, payload any, occurredAt time.Time) (DomainEvent, error) {
	if eventType == "" {
		return DomainEvent{}, errs.NewValueIsRequiredError("eventType")
	}

	return DomainEvent{
		Type:       eventType,
		Payload:    payload,
		OccurredAt: occurredAt,
	}, nil
}
