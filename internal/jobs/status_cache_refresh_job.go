package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatusCacheRefreshJob periodically re-mirrors recently changed order
// statuses into the cache, repairing entries that best-effort post-commit
// writes failed to land.
type StatusCacheRefreshJob struct {
	handler  commands.RefreshStatusCacheCommandHandler
	schedule string
	window   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusCacheRefreshJob creates the refresh job. The schedule is a
// standard five-field cron expression; the window says how far back each run
// looks for status changes and should comfortably cover the interval between
// runs.
func NewStatusCacheRefreshJob(
	handler commands.RefreshStatusCacheCommandHandler,
	schedule string,
	window time.Duration,
	logger *slog.Logger,
) *StatusCacheRefreshJob {
	return &StatusCacheRefreshJob{
		handler:  handler,
		schedule: schedule,
		window:   window,
		cron:     cron.New(),
		logger:   logger.With("component", "status_cache_refresh_job"),
	}
}

// Start schedules the refresh runs.
func (j *StatusCacheRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRefreshStatusCacheCommand(j.window)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "invalid refresh window", "error", cmdErr)
			return
		}

		refreshed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "status cache refresh failed", "error", handleErr)
			return
		}

		if refreshed > 0 {
			j.logger.InfoContext(ctx, "status cache refreshed", "entries", refreshed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status cache refresh job started",
		"schedule", j.schedule,
		"window", j.window.String())
	return nil
}

// Stop stops the refresh job.
func (j *StatusCacheRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status cache refresh job stopped")
}
