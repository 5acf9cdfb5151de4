package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand represents a request to append a line item to an order
// that is still open for modification.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    order.LineItem

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to append a line item.
// Validates the order ID and the line item.
func NewAddLineItemCommand(orderID kernel.UUID, item order.LineItem) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItem(item),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Item returns the line item to append.
func (c AddLineItemCommand) Item() order.LineItem {
	return c.item
}

func (c *AddLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setItem(item order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.item = item
	return nil
}
