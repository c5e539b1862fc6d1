// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes committed domain events (order delivered) from
// the transactional outbox, oldest first, stopping at the first failure
// 2. DeviceTokenCleanupJob - deletes device tokens that have been inactive for
// longer than the retention period
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, purgeHandler, jobs.Schedules{
//		OutboxRelay:        "*/2 * * * * *",
//		DeviceTokenCleanup: "0 30 3 * * *",
//		TokenRetention:     90 * 24 * time.Hour,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failures are logged and retried on the next tick. A tick that is still
// running when the next one is due causes that one to be skipped.
package jobs
