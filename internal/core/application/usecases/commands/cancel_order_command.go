package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to withdraw an order before it
// ships.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
