package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order with an
// initial set of line items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := order.NewLineItem(kernel.NewUUID(), 2)
//	cmd, err := NewCreateOrderCommand(orderID, []order.LineItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	lineItems []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order. It validates
// the order ID and each line item; emptiness of the item list is judged by
// the aggregate, not here, so the EmptyOrder failure always comes from the
// same place.
func NewCreateOrderCommand(orderID kernel.UUID, lineItems []order.LineItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItems returns the initial line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	c.lineItems = lineItems
	return nil
}
