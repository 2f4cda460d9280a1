package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusCacheRefreshJob *StatusCacheRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshHandler commands.RefreshStatusCacheCommandHandler,
	refreshSchedule string,
	refreshWindow time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusCacheRefreshJob: NewStatusCacheRefreshJob(refreshHandler, refreshSchedule, refreshWindow, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusCacheRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start status cache refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusCacheRefreshJob.Stop()
}
