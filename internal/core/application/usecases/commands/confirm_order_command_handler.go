package commands

import (
	"context"
	"fmt"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ConfirmOrderCommandHandler moves an order from Created to Confirmed.
// Confirming an order in any other state fails with InvalidOrderType and
// leaves the stored record untouched.
type ConfirmOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier OrderEventNotifier
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(repo ports.OrderRepository, notifier OrderEventNotifier) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle loads the order, verifies it is Created, and confirms it.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	created, ok := v.(order.Order[order.Created])
	if !ok {
		return errs.NewInvalidOrderTypeError(fmt.Sprintf(
			"order %s cannot be confirmed from state %s", cmd.OrderID(), order.VariantStateName(v)))
	}

	confirmed := order.Confirm(created, time.Now())
	if err := h.repo.Save(ctx, confirmed); err != nil {
		return err
	}

	h.notifier.notifyOrderChanged(ctx, confirmed)
	return nil
}
