package ports

import (
	"context"
	"time"
)

// OrderChangedEvent notifies downstream systems that an order reached a new
// state. State holds the canonical state name.
type OrderChangedEvent struct {
	OrderID    string    `json:"order_id"`
	State      string    `json:"state"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order state changes to an external broker.
// Publication is best effort: command handlers log failures but never fail
// the command because of them.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
