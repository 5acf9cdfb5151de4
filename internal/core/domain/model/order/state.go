package order

import "time"

// Canonical state names. These are the discriminator values persisted
// alongside flattened order records and exposed over the API.
const (
	StateCreated   = "created"
	StateConfirmed = "confirmed"
	StateShipped   = "shipped"
	StateCancelled = "cancelled"
)

// Created is the state tag for an order that is still open for line item
// changes. It carries no additional data.
type Created struct{}

// Confirmed is the state tag for an order whose line items are frozen and
// that is awaiting shipment.
type Confirmed struct {
	ConfirmedAt time.Time
}

// Shipped is the terminal success state tag. It carries the confirmation
// timestamp, the shipment timestamp, and the carrier tracking ID.
type Shipped struct {
	ConfirmedAt time.Time
	ShippedAt   time.Time
	TrackingID  string
}

// Cancelled is the terminal withdrawal state tag.
type Cancelled struct {
	CancelledAt time.Time
}

// State is the closed set of order lifecycle states. Only the four tags
// above satisfy it, so every Order instantiation is one of the four known
// variants.
type State interface {
	Created | Confirmed | Shipped | Cancelled
}

// Cancellable is the subset of states from which an order may be cancelled.
type Cancellable interface {
	Created | Confirmed
}

// StateName returns the canonical name for a state type.
func StateName[S State]() string {
	var s S
	switch any(s).(type) {
	case Created:
		return StateCreated
	case Confirmed:
		return StateConfirmed
	case Shipped:
		return StateShipped
	default:
		return StateCancelled
	}
}
