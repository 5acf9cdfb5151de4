package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations flatten the strongly-typed order into a single storage
// record carrying a state discriminator, and reconstruct the runtime variant
// on the way back out.
type OrderRepository interface {
	// Save persists an order in whatever state it currently is. A save for
	// an existing ID replaces the stored record (last writer wins).
	Save(ctx context.Context, v order.Variant) error

	// Get retrieves the order with the given ID as a runtime variant.
	// Returns OrderNotFound if no record exists.
	Get(ctx context.Context, id kernel.UUID) (order.Variant, error)

	// GetAllCreated retrieves every order still in the Created state.
	// Used by the stale-order cancellation job.
	GetAllCreated(ctx context.Context) ([]order.Order[order.Created], error)
}
