package memstore

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T) order.Order[order.Created] {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), []order.LineItem{li}, time.Now())
	require.NoError(t, err)
	return o
}

func TestRecordRoundTrip(t *testing.T) {
	now := time.Now()
	created := testOrder(t)

	tests := []struct {
		name    string
		variant order.Variant
		state   string
	}{
		{"created", created, order.StateCreated},
		{"confirmed", order.Confirm(created, now), order.StateConfirmed},
		{"shipped", order.Ship(order.Confirm(created, now), now.Add(time.Hour), "TRK-7"), order.StateShipped},
		{"cancelled", order.Cancel(created, now), order.StateCancelled},
	}

	for _, tt := range tests {
		t.Run("should survive flatten and reconstruct when "+tt.name, func(t *testing.T) {
			rec := recordFromVariant(tt.variant)
			require.Equal(t, tt.state, rec.State)

			restored, err := variantFromRecord(rec)
			require.NoError(t, err)

			require.True(t, restored.ID().IsEqual(tt.variant.ID()))
			require.Equal(t, order.VariantStateName(tt.variant), order.VariantStateName(restored))
		})
	}
}

func TestRecordRoundTrip_PreservesShippedFields(t *testing.T) {
	now := time.Now()
	shipped := order.Ship(order.Confirm(testOrder(t), now), now.Add(time.Hour), "TRK-7")

	rec := recordFromVariant(shipped)

	restored, err := variantFromRecord(rec)
	require.NoError(t, err)

	got, ok := restored.(order.Order[order.Shipped])
	require.True(t, ok)
	require.Equal(t, shipped.State().ConfirmedAt, got.State().ConfirmedAt)
	require.Equal(t, shipped.State().ShippedAt, got.State().ShippedAt)
	require.Equal(t, "TRK-7", got.State().TrackingID)
	require.Equal(t, shipped.LineItems(), got.LineItems())
}

func TestVariantFromRecord_UnknownState(t *testing.T) {
	rec := recordFromVariant(testOrder(t))
	rec.State = "archived"

	_, err := variantFromRecord(rec)
	require.ErrorIs(t, err, errs.ErrInvalidOrderType)
}

func TestVariantFromRecord_MissingStateFields(t *testing.T) {
	now := time.Now()
	created := testOrder(t)

	tests := []struct {
		name    string
		variant order.Variant
		corrupt func(rec *orderRecord)
	}{
		{"confirmed without confirmedAt", order.Confirm(created, now),
			func(rec *orderRecord) { rec.ConfirmedAt = nil }},
		{"shipped without shippedAt", order.Ship(order.Confirm(created, now), now, "TRK-1"),
			func(rec *orderRecord) { rec.ShippedAt = nil }},
		{"shipped without trackingId", order.Ship(order.Confirm(created, now), now, "TRK-1"),
			func(rec *orderRecord) { rec.TrackingID = nil }},
		{"cancelled without cancelledAt", order.Cancel(created, now),
			func(rec *orderRecord) { rec.CancelledAt = nil }},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			rec := recordFromVariant(tt.variant)
			tt.corrupt(&rec)

			_, err := variantFromRecord(rec)
			require.ErrorIs(t, err, errs.ErrMissingField)
		})
	}
}

func TestVariantFromRecord_CorruptLineItem(t *testing.T) {
	rec := recordFromVariant(testOrder(t))
	rec.LineItems[0].Quantity = 0

	_, err := variantFromRecord(rec)
	require.ErrorIs(t, err, errs.ErrRepositoryBackendFailure)
}
