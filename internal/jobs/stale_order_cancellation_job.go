package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orderadmin/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob manages the scheduled cleanup of abandoned orders.
// Runs every minute to cancel orders that have sat in pending status longer
// than the configured age.
type StaleOrderCancellationJob struct {
	handler   commands.CancelStaleOrdersCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderCancellationJob creates a new job for cancelling stale pending orders.
// Uses CancelStaleOrdersCommandHandler with the given staleness threshold.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the stale order cancellation job to run every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoStaleOrdersFound) {
				j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)")
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
