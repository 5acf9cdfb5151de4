package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to confirm an order, freezing its
// line items.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order.
func NewConfirmOrderCommand(orderID kernel.UUID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
