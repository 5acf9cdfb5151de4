package commands

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// OrderEventNotifier publishes order-changed events on behalf of command
// handlers. Publication is best effort: a failed publish is logged and the
// command still succeeds, so the repository stays the source of truth.
type OrderEventNotifier struct {
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewOrderEventNotifier creates a notifier over the given publisher.
func NewOrderEventNotifier(publisher ports.OrderEventPublisher, logger *slog.Logger) OrderEventNotifier {
	return OrderEventNotifier{
		publisher: publisher,
		logger:    logger.With("component", "order_event_notifier"),
	}
}

// notifyOrderChanged publishes the order's current state.
func (n OrderEventNotifier) notifyOrderChanged(ctx context.Context, v order.Variant) {
	event := ports.OrderChangedEvent{
		OrderID:    v.ID().String(),
		State:      order.VariantStateName(v),
		OccurredAt: time.Now(),
	}

	if err := n.publisher.PublishOrderChanged(ctx, event); err != nil {
		n.logger.WarnContext(ctx, "failed to publish order changed event",
			"order_id", event.OrderID, "state", event.State, "error", err)
	}
}
