package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

// Variant is the type-erased carrier for an order whose state is only known
// at runtime, typically after a storage lookup by ID. The interface is
// sealed: its only implementations are the four Order instantiations, so a
// type switch over them is exhaustive.
//
//	switch o := v.(type) {
//	case order.Order[order.Created]:
//	    // line items may still change
//	case order.Order[order.Confirmed]:
//	    // awaiting shipment
//	case order.Order[order.Shipped]:
//	case order.Order[order.Cancelled]:
//	    // terminal
//	}
//
// Callers collapse a Variant back to a concrete Order[S] through such a
// switch before invoking a transition; an arm that does not permit the
// requested operation reports InvalidOrderType.
type Variant interface {
	// ID returns the order's unique identifier, defined for every state.
	ID() kernel.UUID

	// LineItems returns a copy of the order's line items.
	LineItems() []LineItem

	// CreatedAt returns when the order was opened.
	CreatedAt() time.Time

	// UpdatedAt returns when the order's line items last changed.
	UpdatedAt() time.Time

	// Validate ensures the underlying order was properly constructed.
	Validate() error

	variant()
}

// VariantStateName returns the canonical state name of a runtime variant.
// Used in persistence discriminators and error messages.
func VariantStateName(v Variant) string {
	switch v.(type) {
	case Order[Created]:
		return StateCreated
	case Order[Confirmed]:
		return StateConfirmed
	case Order[Shipped]:
		return StateShipped
	default:
		return StateCancelled
	}
}
