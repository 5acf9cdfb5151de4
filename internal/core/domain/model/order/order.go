package order

import (
	"errors"
	"slices"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a commercial order. The type parameter S
// encodes the order's lifecycle state, so only state-appropriate operations
// exist for a given instantiation: line item changes and Confirm accept an
// Order[Created], Ship accepts an Order[Confirmed], and no transition at all
// accepts an Order[Shipped] or Order[Cancelled].
//
// Transitions consume the prior-state value and return a fresh value in the
// next state; an Order is never mutated in place across a transition.
//
// Order follows these invariants:
//   - the identifier is a constructed UUID
//   - a newly created order has at least one line item
//   - createdAt never exceeds updatedAt
type Order[S State] struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// lineItems holds the ordered products, in insertion order
	lineItems []LineItem

	// createdAt is the creation timestamp; never changes after NewOrder
	createdAt time.Time

	// updatedAt is bumped by line item changes while the order is Created
	updatedAt time.Time

	// state carries the data attached to the current lifecycle state
	state S

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order in the Created state. This is the only entry
// point into the lifecycle: every other state is reached through a
// transition function.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - items: initial line items (must not be empty)
//   - now: used for both createdAt and updatedAt
//
// Returns an EmptyOrderError if items is empty, or a validation error if the
// ID or any line item was not properly constructed.
func NewOrder(id kernel.UUID, items []LineItem, now time.Time) (Order[Created], error) {
	if err := id.Validate(); err != nil {
		return Order[Created]{}, err
	}

	if len(items) == 0 {
		return Order[Created]{}, errs.NewEmptyOrderError()
	}

	if err := validateLineItems(items); err != nil {
		return Order[Created]{}, err
	}

	return Order[Created]{
		id:            id,
		lineItems:     slices.Clone(items),
		createdAt:     now,
		updatedAt:     now,
		state:         Created{},
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order in a known state from persistence.
// It validates the identifier and line items but not the business rules
// already enforced at creation time; in particular a Cancelled order
// restored with zero line items is legal, since removing the last item
// cancels the order.
func RestoreOrder[S State](
	id kernel.UUID,
	items []LineItem,
	createdAt time.Time,
	updatedAt time.Time,
	state S,
) (Order[S], error) {
	if err := id.Validate(); err != nil {
		return Order[S]{}, err
	}

	if err := validateLineItems(items); err != nil {
		return Order[S]{}, err
	}

	return Order[S]{
		id:            id,
		lineItems:     slices.Clone(items),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		state:         state,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o Order[S]) Validate() error {
	if !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o Order[S]) ID() kernel.UUID {
	return o.id
}

// LineItems returns a copy of the order's line items in insertion order.
func (o Order[S]) LineItems() []LineItem {
	return slices.Clone(o.lineItems)
}

// CreatedAt returns the creation timestamp.
func (o Order[S]) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o Order[S]) UpdatedAt() time.Time {
	return o.updatedAt
}

// State returns the state tag with its attached data.
func (o Order[S]) State() S {
	return o.state
}

// IsEqual compares two orders of the same state by their identifiers.
func (o Order[S]) IsEqual(other Order[S]) bool {
	return o.id.IsEqual(other.id)
}

// variant seals the Variant interface: only Order instantiations satisfy it.
func (o Order[S]) variant() {}

// AddLineItem appends a line item to a created order and bumps updatedAt.
// There is no upper bound on the number of items.
func AddLineItem(o Order[Created], item LineItem, now time.Time) Order[Created] {
	o.lineItems = append(slices.Clone(o.lineItems), item)
	o.updatedAt = now
	return o
}

// RemoveLineItem removes every line item matching itemID and bumps
// updatedAt. Removing an absent item is a no-op on the item list. The
// resulting order may have zero items; deciding what to do about an emptied
// order is the caller's responsibility, not the aggregate's.
func RemoveLineItem(o Order[Created], itemID kernel.UUID, now time.Time) Order[Created] {
	o.lineItems = slices.DeleteFunc(slices.Clone(o.lineItems), func(li LineItem) bool {
		return li.ID().IsEqual(itemID)
	})
	o.updatedAt = now
	return o
}

// Confirm freezes a created order's line items and moves it to Confirmed.
func Confirm(o Order[Created], confirmedAt time.Time) Order[Confirmed] {
	return Order[Confirmed]{
		id:            o.id,
		lineItems:     o.lineItems,
		createdAt:     o.createdAt,
		updatedAt:     o.updatedAt,
		state:         Confirmed{ConfirmedAt: confirmedAt},
		isConstructed: o.isConstructed,
	}
}

// Cancel withdraws an order that has not shipped yet. It accepts orders in
// the Created or Confirmed state; Shipped and Cancelled orders cannot be
// cancelled, and that is a compile error rather than a runtime check.
func Cancel[S Cancellable](o Order[S], cancelledAt time.Time) Order[Cancelled] {
	return Order[Cancelled]{
		id:            o.id,
		lineItems:     o.lineItems,
		createdAt:     o.createdAt,
		updatedAt:     o.updatedAt,
		state:         Cancelled{CancelledAt: cancelledAt},
		isConstructed: o.isConstructed,
	}
}

// Ship moves a confirmed order to the terminal Shipped state, recording the
// shipment timestamp and the carrier tracking ID. The tracking ID is opaque;
// no format validation is applied.
func Ship(o Order[Confirmed], shippedAt time.Time, trackingID string) Order[Shipped] {
	return Order[Shipped]{
		id:        o.id,
		lineItems: o.lineItems,
		createdAt: o.createdAt,
		updatedAt: o.updatedAt,
		state: Shipped{
			ConfirmedAt: o.state.ConfirmedAt,
			ShippedAt:   shippedAt,
			TrackingID:  trackingID,
		},
		isConstructed: o.isConstructed,
	}
}

func validateLineItems(items []LineItem) error {
	var err error
	for _, item := range items {
		err = errors.Join(err, item.Validate())
	}
	return err
}
