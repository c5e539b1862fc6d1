package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Schedules configures the cron expressions of every job. Expressions carry
// a leading seconds field.
type Schedules struct {
	OutboxRelay        string
	DeviceTokenCleanup string
	TokenRetention     time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob        *OutboxRelayJob
	deviceTokenCleanupJob *DeviceTokenCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	relayer OutboxRelayer,
	purger DeviceTokenPurger,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob:        NewOutboxRelayJob(relayer, schedules.OutboxRelay, DefaultRelayBatchSize, logger),
		deviceTokenCleanupJob: NewDeviceTokenCleanupJob(purger, schedules.DeviceTokenCleanup, schedules.TokenRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.deviceTokenCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start device token cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
	jm.deviceTokenCleanupJob.Stop()
}

func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
