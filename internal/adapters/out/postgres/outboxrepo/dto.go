// Package outboxrepo implements the transactional outbox for domain events.
// Events are written to the outbox table inside the same transaction as the
// aggregate change, then published asynchronously by a dispatcher job, which
// gives at-least-once delivery without distributed transactions.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
)

// MessageDTO represents one outbox row. Sequence is assigned by the
// database and fixes the publication order; PublishedAt is nil until the
// dispatcher has delivered the message.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence    int64     `gorm:"autoIncrement;uniqueIndex"`
	Type        string    `gorm:"index"`
	Payload     []byte    `gorm:"type:jsonb"`
	OccurredAt  time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (MessageDTO) TableName() string {
	return "outbox"
}
