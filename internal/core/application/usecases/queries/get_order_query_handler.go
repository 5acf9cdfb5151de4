package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrderQueryHandler reads a single order through the repository port, so
// it works the same over the in-memory and the postgres storage. The result
// is the order in whichever state it currently holds; callers dispatch on
// the variant.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle returns the order as a variant, or OrderNotFound when no order is
// stored under the queried ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Variant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Get(ctx, query.OrderID())
}
