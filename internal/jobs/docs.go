// Package jobs provides scheduled background tasks for the orders system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Its single job, OutboxDispatcherJob, runs every second and drains the
// transactional outbox: unpublished domain events are read in sequence
// order, handed to an EventRelay, and marked published on success.
//
// Delivery is at-least-once. A crash between relay delivery and the
// published-at update replays the event on the next run, so relays must
// tolerate duplicates.
//
// # Usage
//
//	store := outboxrepo.NewGormOutboxStore(db)
//	relay := jobs.NewLogEventRelay(logger)
//	job := jobs.NewOutboxDispatcherJob(store, relay, clock, logger)
//
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start outbox dispatcher:", err)
//	}
//	defer job.Stop()
package jobs
