package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is an outbox entry ready for dispatch.
type Message struct {
	ID         uuid.UUID
	Sequence   int64
	Type       string
	Payload    json.RawMessage
	OccurredAt time.Time
}

// GormOutboxStore provides the dispatcher's view of the outbox table:
// fetching unpublished messages in insertion order and marking them
// published after delivery.
type GormOutboxStore struct {
	db *gorm.DB
}

// NewGormOutboxStore creates a store over the outbox table.
func NewGormOutboxStore(db *gorm.DB) *GormOutboxStore {
	return &GormOutboxStore{db: db}
}

// FetchUnpublished returns up to limit unpublished messages, oldest first.
func (s *GormOutboxStore) FetchUnpublished(ctx context.Context, limit int) ([]Message, error) {
	var dtos []MessageDTO
	err := s.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("sequence ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]Message, len(dtos))
	for i, dto := range dtos {
		messages[i] = Message{
			ID:         dto.ID,
			Sequence:   dto.Sequence,
			Type:       dto.Type,
			Payload:    dto.Payload,
			OccurredAt: dto.OccurredAt,
		}
	}

	return messages, nil
}

// MarkPublished records the delivery time of a message. Delivery is
// at-least-once: a crash between delivery and this update means the
// message is sent again on the next run.
func (s *GormOutboxStore) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	return s.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id).
		Update("published_at", publishedAt).Error
}
