package kafka

import (
	"context"

	"orders/internal/core/ports"
)

// NoOpOrderEventPublisher discards events. Used when no broker is
// configured, for example in local development against the in-memory store.
type NoOpOrderEventPublisher struct{}

// NewNoOpOrderEventPublisher creates a publisher that drops every event.
func NewNoOpOrderEventPublisher() NoOpOrderEventPublisher {
	return NoOpOrderEventPublisher{}
}

// PublishOrderChanged accepts and discards the event.
func (NoOpOrderEventPublisher) PublishOrderChanged(_ context.Context, _ ports.OrderChangedEvent) error {
	return nil
}
