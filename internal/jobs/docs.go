// Package jobs provides scheduled background tasks for the order admin system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the admin service.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel pending orders
// that have exceeded the configured staleness threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, stalePendingTTL, logger)
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
// The cancellation job uses the cron expression "0 * * * * *" which fires at
// the top of every minute. Stale cleanup does not need to be real-time; a
// minute of slack keeps database load negligible.
//
// # Error Handling
//
// - The cancellation job treats "no stale orders" as a normal outcome and
// does not log it
// - All other errors are logged as they indicate system issues
package jobs
