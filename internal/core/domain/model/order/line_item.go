package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an immutable value object identifying a product and the
// quantity ordered. Two line items are equal when their ID and quantity are
// equal.
type LineItem struct {
	// id identifies the product
	id kernel.UUID

	// quantity is the number of units ordered (always positive)
	quantity int

	// isConstructed ensures the line item was created via NewLineItem
	isConstructed bool
}

// NewLineItem creates a validated line item.
//
// Parameters:
//   - id: product identifier (must be a constructed UUID)
//   - quantity: number of units (must be positive)
//
// Returns a validation error if the ID is the zero UUID or the quantity is
// not greater than zero.
func NewLineItem(id kernel.UUID, quantity int) (LineItem, error) {
	if err := id.Validate(); err != nil {
		return LineItem{}, err
	}

	if quantity <= 0 {
		return LineItem{}, fmt.Errorf("quantity is invalid: %d is not greater than 0", quantity)
	}

	return LineItem{
		id:            id,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was constructed through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (li LineItem) ID() kernel.UUID {
	return li.id
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// IsEqual compares two line items by value.
func (li LineItem) IsEqual(other LineItem) bool {
	return li.id.IsEqual(other.id) && li.quantity == other.quantity
}
