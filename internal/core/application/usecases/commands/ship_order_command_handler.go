package commands

import (
	"context"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ShipOrderCommandHandler moves an order from Confirmed to the terminal
// Shipped state, recording the shipment timestamp and tracking ID supplied
// by the caller.
type ShipOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier OrderEventNotifier
}

// NewShipOrderCommandHandler creates a handler for order shipment.
func NewShipOrderCommandHandler(repo ports.OrderRepository, notifier OrderEventNotifier) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle loads the order, verifies it is Confirmed, and ships it.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	confirmed, ok := v.(order.Order[order.Confirmed])
	if !ok {
		return errs.NewInvalidOrderTypeError(fmt.Sprintf(
			"order %s cannot be shipped from state %s", cmd.OrderID(), order.VariantStateName(v)))
	}

	shipped := order.Ship(confirmed, cmd.ShippedAt(), cmd.TrackingID())
	if err := h.repo.Save(ctx, shipped); err != nil {
		return err
	}

	h.notifier.notifyOrderChanged(ctx, shipped)
	return nil
}
