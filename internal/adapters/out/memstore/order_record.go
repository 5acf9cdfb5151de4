// Package memstore provides an in-memory order repository. Orders are
// stored as flattened records: one wide row per order carrying the state
// discriminator plus optional per-state fields, the same shape the postgres
// adapter persists. Reconstruction validates that the populated fields
// match the discriminator.
package memstore

import (
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// orderRecord is the flattened storage form of an order. State-specific
// fields are pointers; a field is set exactly when the discriminator says
// the order reached that state.
type orderRecord struct {
	ID        string
	LineItems []lineItemRecord
	CreatedAt time.Time
	UpdatedAt time.Time
	State     string

	ConfirmedAt *time.Time
	ShippedAt   *time.Time
	TrackingID  *string
	CancelledAt *time.Time
}

type lineItemRecord struct {
	ID       string
	Quantity int
}

// recordFromVariant flattens an order into its storage record.
func recordFromVariant(v order.Variant) orderRecord {
	rec := orderRecord{
		ID:        v.ID().String(),
		LineItems: lineItemRecords(v.LineItems()),
		CreatedAt: v.CreatedAt(),
		UpdatedAt: v.UpdatedAt(),
		State:     order.VariantStateName(v),
	}

	switch o := v.(type) {
	case order.Order[order.Created]:
	case order.Order[order.Confirmed]:
		confirmedAt := o.State().ConfirmedAt
		rec.ConfirmedAt = &confirmedAt
	case order.Order[order.Shipped]:
		confirmedAt := o.State().ConfirmedAt
		shippedAt := o.State().ShippedAt
		trackingID := o.State().TrackingID
		rec.ConfirmedAt = &confirmedAt
		rec.ShippedAt = &shippedAt
		rec.TrackingID = &trackingID
	case order.Order[order.Cancelled]:
		cancelledAt := o.State().CancelledAt
		rec.CancelledAt = &cancelledAt
	}

	return rec
}

// variantFromRecord reconstructs the typed order a record describes.
// An unrecognized discriminator fails with InvalidOrderType; a record whose
// state fields do not back its discriminator fails with MissingField.
func variantFromRecord(rec orderRecord) (order.Variant, error) {
	switch rec.State {
	case order.StateCreated:
		return asVariant(orderFromRecord[order.Created](rec))
	case order.StateConfirmed:
		return asVariant(orderFromRecord[order.Confirmed](rec))
	case order.StateShipped:
		return asVariant(orderFromRecord[order.Shipped](rec))
	case order.StateCancelled:
		return asVariant(orderFromRecord[order.Cancelled](rec))
	default:
		return nil, errs.NewInvalidOrderTypeError(fmt.Sprintf(
			"unknown state %q for order %s", rec.State, rec.ID))
	}
}

func asVariant[S order.State](o order.Order[S], err error) (order.Variant, error) {
	if err != nil {
		return nil, err
	}
	return o, nil
}

func identityFromRecord(rec orderRecord) (kernel.UUID, []order.LineItem, error) {
	id, err := kernel.UUIDFromString(rec.ID)
	if err != nil {
		return kernel.UUID{}, nil, errs.NewRepositoryBackendFailureErrorWithCause(
			fmt.Sprintf("corrupt record id %q", rec.ID), err)
	}

	items, err := lineItemsFromRecords(rec.LineItems)
	if err != nil {
		return kernel.UUID{}, nil, err
	}

	return id, items, nil
}

func lineItemRecords(items []order.LineItem) []lineItemRecord {
	recs := make([]lineItemRecord, 0, len(items))
	for _, li := range items {
		recs = append(recs, lineItemRecord{
			ID:       li.ID().String(),
			Quantity: li.Quantity(),
		})
	}
	return recs
}

func lineItemsFromRecords(recs []lineItemRecord) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(recs))
	for _, rec := range recs {
		id, err := kernel.UUIDFromString(rec.ID)
		if err != nil {
			return nil, errs.NewRepositoryBackendFailureErrorWithCause(
				fmt.Sprintf("corrupt line item id %q", rec.ID), err)
		}

		li, err := order.NewLineItem(id, rec.Quantity)
		if err != nil {
			return nil, errs.NewRepositoryBackendFailureErrorWithCause(
				fmt.Sprintf("corrupt line item %q", rec.ID), err)
		}

		items = append(items, li)
	}
	return items, nil
}
