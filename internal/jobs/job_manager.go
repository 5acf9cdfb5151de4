package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderCancellationJob *StaleOrderCancellationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	repo ports.OrderRepository,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	staleOrderTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderCancellationJob: NewStaleOrderCancellationJob(
			repo, cancelOrderHandler, staleOrderTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderCancellationJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order cancellation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderCancellationJob.Stop()
}
