// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required for the service.
//
// # Available Jobs
//
// 1. StatusCacheRefreshJob - Re-mirrors recently changed order statuses into
// the cache, healing entries that best-effort post-commit writes missed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, "*/5 * * * *", 15*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh schedule is configured as a standard five-field cron
// expression. The refresh window should be larger than the interval between
// runs so no change escapes the sweep.
//
// # Error Handling
//
// A failed refresh run is logged and retried on the next tick; individual
// cache write failures are skipped inside the run so one bad key cannot
// stall the whole sweep.
package jobs
