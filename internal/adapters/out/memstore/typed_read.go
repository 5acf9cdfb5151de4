package memstore

import (
	"context"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// FindOrder retrieves an order by ID as a specific state. The stored
// discriminator must match the requested state; asking for a Created order
// that has since been confirmed fails with InvalidOrderType rather than
// handing back a stale phase.
//
// Example:
//
//	created, err := memstore.FindOrder[order.Created](ctx, repo, id)
//	if err != nil {
//	    return err
//	}
//	updated := order.AddLineItem(created, item, time.Now())
func FindOrder[S order.State](ctx context.Context, r *OrderRepository, id kernel.UUID) (order.Order[S], error) {
	var zero order.Order[S]

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	if err := id.Validate(); err != nil {
		return zero, err
	}

	r.mu.RLock()
	rec, ok := r.records[id.String()]
	r.mu.RUnlock()

	if !ok {
		return zero, errs.NewOrderNotFoundError(id.String())
	}

	return orderFromRecord[S](rec)
}

// orderFromRecord reconstructs a record as a specific state, rejecting
// records whose discriminator names a different state.
func orderFromRecord[S order.State](rec orderRecord) (order.Order[S], error) {
	var zero order.Order[S]

	want := order.StateName[S]()
	if rec.State != want {
		return zero, errs.NewInvalidOrderTypeError(fmt.Sprintf(
			"order %s is %s, not %s", rec.ID, rec.State, want))
	}

	var state S
	switch s := any(&state).(type) {
	case *order.Created:
	case *order.Confirmed:
		if rec.ConfirmedAt == nil {
			return zero, errs.NewMissingFieldError("confirmedAt")
		}
		s.ConfirmedAt = *rec.ConfirmedAt
	case *order.Shipped:
		if rec.ConfirmedAt == nil {
			return zero, errs.NewMissingFieldError("confirmedAt")
		}
		if rec.ShippedAt == nil {
			return zero, errs.NewMissingFieldError("shippedAt")
		}
		if rec.TrackingID == nil {
			return zero, errs.NewMissingFieldError("trackingId")
		}
		s.ConfirmedAt = *rec.ConfirmedAt
		s.ShippedAt = *rec.ShippedAt
		s.TrackingID = *rec.TrackingID
	case *order.Cancelled:
		if rec.CancelledAt == nil {
			return zero, errs.NewMissingFieldError("cancelledAt")
		}
		s.CancelledAt = *rec.CancelledAt
	}

	id, items, err := identityFromRecord(rec)
	if err != nil {
		return zero, err
	}

	o, err := order.RestoreOrder(id, items, rec.CreatedAt, rec.UpdatedAt, state)
	if err != nil {
		return zero, errs.NewRepositoryBackendFailureErrorWithCause(
			fmt.Sprintf("corrupt record for order %s", rec.ID), err)
	}

	return o, nil
}
