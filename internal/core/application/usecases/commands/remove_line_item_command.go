package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand represents a request to remove every line item with
// a given product ID from an order that is still open for modification.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates a command to remove a line item.
func NewRemoveLineItemCommand(orderID kernel.UUID, itemID kernel.UUID) (RemoveLineItemCommand, error) {
	cmd := RemoveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the product identifier to remove.
func (c RemoveLineItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveLineItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
