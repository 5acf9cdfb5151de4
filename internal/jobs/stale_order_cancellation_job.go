package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob cancels orders that stayed in the Created state
// longer than the configured TTL. Runs every minute; staleness is judged by
// the order's updatedAt, so an order kept alive by line item changes is not
// cancelled.
type StaleOrderCancellationJob struct {
	repo    ports.OrderRepository
	handler commands.CancelOrderCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderCancellationJob creates a job that cancels idle orders.
func NewStaleOrderCancellationJob(
	repo ports.OrderRepository,
	handler commands.CancelOrderCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		repo:    repo,
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the cancellation job to run every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale order cancellation job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}

func (j *StaleOrderCancellationJob) run(ctx context.Context) {
	created, err := j.repo.GetAllCreated(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order scan failed", "error", err)
		return
	}

	cutoff := time.Now().Add(-j.ttl)
	for _, o := range created {
		if o.UpdatedAt().After(cutoff) {
			continue
		}

		cmd, err := commands.NewCancelOrderCommand(o.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancel command invalid",
				"order_id", o.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A state change between scan and cancel is expected under
			// concurrent confirms; anything else is an operational issue.
			j.logger.WarnContext(ctx, "Stale order cancellation failed",
				"order_id", o.ID().String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Cancelled stale order",
			"order_id", o.ID().String(), "idle_since", o.UpdatedAt())
	}
}
