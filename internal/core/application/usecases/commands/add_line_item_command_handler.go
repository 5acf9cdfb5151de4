package commands

import (
	"context"
	"fmt"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// AddLineItemCommandHandler appends a line item to an order in the Created
// state. Any other state rejects the change with InvalidOrderType.
type AddLineItemCommandHandler struct {
	repo     ports.OrderRepository
	notifier OrderEventNotifier
}

// NewAddLineItemCommandHandler creates a handler for line item addition.
func NewAddLineItemCommandHandler(repo ports.OrderRepository, notifier OrderEventNotifier) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle loads the order, verifies it is still Created, appends the item,
// and saves the result.
func (h AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) error {
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

	updated := order.AddLineItem(created, cmd.Item(), time.Now())
	if err := h.repo.Save(ctx, updated); err != nil {
		return err
	}

	h.notifier.notifyOrderChanged(ctx, updated)
	return nil
}
