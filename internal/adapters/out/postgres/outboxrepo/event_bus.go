package outboxrepo

import (
	"context"
	"encoding/json"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOutboxEventBus implements the EventBus port by inserting events into
// the outbox table. Bound to the unit of work's transaction, the insert
// commits or rolls back together with the aggregate write.
type GormOutboxEventBus struct {
	db *gorm.DB
}

// NewGormOutboxEventBus creates an event bus writing to the outbox table.
func NewGormOutboxEventBus(db *gorm.DB) *GormOutboxEventBus {
	return &GormOutboxEventBus{db: db}
}

// Publish appends the events to the outbox in the order given.
func (b *GormOutboxEventBus) Publish(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]MessageDTO, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			return err
		}

		rows = append(rows, MessageDTO{
			ID:         uuid.New(),
			Type:       event.Type,
			Payload:    payload,
			OccurredAt: event.OccurredAt,
		})
	}

	return b.db.WithContext(ctx).Create(&rows).Error
}
