package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier, whatever state
// it is in.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	v, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("order %s is %s\n", v.ID(), order.VariantStateName(v))
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier being looked up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}
