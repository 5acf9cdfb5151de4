package commands

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
	ErrShippedAtIsRequired = errors.New("shippedAt is required")
)

// ShipOrderCommand represents a request to ship a confirmed order. The
// tracking ID is treated as an opaque carrier reference; no format
// validation is applied to it.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	shippedAt  time.Time
	trackingID string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order. Validates the
// order ID and that a shipment timestamp is present.
func NewShipOrderCommand(orderID kernel.UUID, shippedAt time.Time, trackingID string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShippedAt(shippedAt),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShippedAt returns the shipment timestamp supplied by the caller.
func (c ShipOrderCommand) ShippedAt() time.Time {
	return c.shippedAt
}

// TrackingID returns the opaque carrier tracking reference.
func (c ShipOrderCommand) TrackingID() string {
	return c.trackingID
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setShippedAt(shippedAt time.Time) error {
	if shippedAt.IsZero() {
		return ErrShippedAtIsRequired
	}

	c.shippedAt = shippedAt
	return nil
}
