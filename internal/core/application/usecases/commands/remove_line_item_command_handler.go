package commands

import (
	"context"
	"fmt"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// RemoveLineItemCommandHandler removes a line item from an order in the
// Created state. When the removal empties the order, the order is cancelled
// instead of being left without items. That escalation is a product policy
// owned by this handler, deliberately kept out of the aggregate.
type RemoveLineItemCommandHandler struct {
	repo     ports.OrderRepository
	notifier OrderEventNotifier
}

// NewRemoveLineItemCommandHandler creates a handler for line item removal.
func NewRemoveLineItemCommandHandler(repo ports.OrderRepository, notifier OrderEventNotifier) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle loads the order, verifies it is still Created, removes the item,
// and saves either the updated order or, if no items remain, the cancelled
// order.
func (h RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
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
			"order %s is not in a modifiable state: %s", cmd.OrderID(), order.VariantStateName(v)))
	}

	updated := order.RemoveLineItem(created, cmd.ItemID(), time.Now())

	if len(updated.LineItems()) == 0 {
		cancelled := order.Cancel(updated, time.Now())
		if err := h.repo.Save(ctx, cancelled); err != nil {
			return err
		}

		h.notifier.notifyOrderChanged(ctx, cancelled)
		return nil
	}

	if err := h.repo.Save(ctx, updated); err != nil {
		return err
	}

	h.notifier.notifyOrderChanged(ctx, updated)
	return nil
}
