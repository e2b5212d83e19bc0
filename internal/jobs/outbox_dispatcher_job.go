package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// dispatchBatchSize bounds how many outbox rows one run processes.
const dispatchBatchSize = 100

// OutboxStore is the dispatcher's view of the outbox table.
type OutboxStore interface {
	FetchUnpublished(ctx context.Context, limit int) ([]outboxrepo.Message, error)
	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
}

// OutboxDispatcherJob drains the transactional outbox. Runs every second,
// delivering unpublished events to the relay in sequence order and marking
// each one published after successful delivery.
type OutboxDispatcherJob struct {
	store  OutboxStore
	relay  ports.EventRelay
	clock  ports.Clock
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOutboxDispatcherJob creates a dispatcher over the given outbox store
// and relay.
func NewOutboxDispatcherJob(
	store OutboxStore,
	relay ports.EventRelay,
	clock ports.Clock,
	logger *slog.Logger,
) *OutboxDispatcherJob {
	return &OutboxDispatcherJob{
		store:  store,
		relay:  relay,
		clock:  clock,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "outbox_dispatcher_job"),
	}
}

// Start begins the dispatch loop, running every second.
func (j *OutboxDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.Dispatch(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch run failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job started (running every second)")
	return nil
}

// Stop stops the dispatch loop.
func (j *OutboxDispatcherJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job stopped")
}

// Dispatch performs one dispatch run. A delivery failure stops the run at
// the failing message so ordering is preserved; the message and its
// successors are retried on the next run.
func (j *OutboxDispatcherJob) Dispatch(ctx context.Context) error {
	messages, err := j.store.FetchUnpublished(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		event, eventErr := kernel.NewDomainEvent(message.Type, message.Payload, message.OccurredAt)
		if eventErr != nil {
			return eventErr
		}

		if err = j.relay.Deliver(ctx, event); err != nil {
			j.logger.ErrorContext(ctx, "Event delivery failed",
				"eventId", message.ID, "eventType", message.Type, "error", err)
			return err
		}

		if err = j.store.MarkPublished(ctx, message.ID, j.clock.Now()); err != nil {
			return err
		}
	}

	return nil
}
