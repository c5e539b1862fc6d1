package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeviceTokenPurger deletes device tokens that stopped being used.
type DeviceTokenPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeDeviceTokensCommand) (int64, error)
}

// DeviceTokenCleanupJob periodically removes inactive device tokens older
// than the retention period.
type DeviceTokenCleanupJob struct {
	purger    DeviceTokenPurger
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewDeviceTokenCleanupJob(
	purger DeviceTokenPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *DeviceTokenCleanupJob {
	return &DeviceTokenCleanupJob{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		cron:      newCron(),
		logger:    logger.With("component", "device_token_cleanup_job"),
	}
}

func (j *DeviceTokenCleanupJob) Start() error {
	cmd, err := commands.NewPurgeDeviceTokensCommand(j.retention)
	if err != nil {
		return err
	}
	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Device token cleanup job started",
		"schedule", j.schedule, "retention", j.retention)
	return nil
}

func (j *DeviceTokenCleanupJob) run(cmd commands.PurgeDeviceTokensCommand) {
	ctx := context.Background()
	purged, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Device token cleanup failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Device tokens purged", "count", purged)
}

func (j *DeviceTokenCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Device token cleanup job stopped")
}
