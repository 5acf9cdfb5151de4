package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// New orders start in the Created state with createdAt equal to updatedAt.
type CreateOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier OrderEventNotifier
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(repo ports.OrderRepository, notifier OrderEventNotifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle processes the order creation command. Returns EmptyOrder if the
// command carries no line items; in that case nothing is stored.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.LineItems(), time.Now())
	if err != nil {
		return err
	}

	if err := h.repo.Save(ctx, created); err != nil {
		return err
	}

	h.notifier.notifyOrderChanged(ctx, created)
	return nil
}
