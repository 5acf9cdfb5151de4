package commands

import (
	"context"
	"fmt"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order in the Created or Confirmed
// state. Shipped and Cancelled orders are terminal, so cancelling them fails
// with InvalidOrderType.
type CancelOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier OrderEventNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(repo ports.OrderRepository, notifier OrderEventNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle loads the order and cancels it when its state permits.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var cancelled order.Order[order.Cancelled]
	switch o := v.(type) {
	case order.Order[order.Created]:
		cancelled = order.Cancel(o, time.Now())
	case order.Order[order.Confirmed]:
		cancelled = order.Cancel(o, time.Now())
	default:
		return errs.NewInvalidOrderTypeError(fmt.Sprintf(
			"order %s cannot be cancelled from state %s", cmd.OrderID(), order.VariantStateName(v)))
	}

	if err := h.repo.Save(ctx, cancelled); err != nil {
		return err
	}

	h.notifier.notifyOrderChanged(ctx, cancelled)
	return nil
}
