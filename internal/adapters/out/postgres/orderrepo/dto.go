// Package orderrepo persists orders with GORM. Every order occupies one
// wide row: the state discriminator plus nullable per-state columns, with
// line items serialized to a JSON column. The same record shape backs the
// in-memory store, so both repositories reconstruct orders identically.
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order in any state.
// Timestamp auto-tracking is disabled; createdAt and updatedAt belong to
// the domain, not to GORM.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineItems []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	State     string    `gorm:"index"`

	ConfirmedAt *time.Time
	ShippedAt   *time.Time
	TrackingID  *string
	CancelledAt *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type lineItemDTO struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
}

// fromDomain converts an order in any state to its database row.
func fromDomain(v order.Variant) (OrderDTO, error) {
	dto := OrderDTO{
		ID:        v.ID().Bytes(),
		CreatedAt: v.CreatedAt(),
		UpdatedAt: v.UpdatedAt(),
		State:     order.VariantStateName(v),
	}

	switch o := v.(type) {
	case order.Order[order.Created]:
	case order.Order[order.Confirmed]:
		confirmedAt := o.State().ConfirmedAt
		dto.ConfirmedAt = &confirmedAt
	case order.Order[order.Shipped]:
		confirmedAt := o.State().ConfirmedAt
		shippedAt := o.State().ShippedAt
		trackingID := o.State().TrackingID
		dto.ConfirmedAt = &confirmedAt
		dto.ShippedAt = &shippedAt
		dto.TrackingID = &trackingID
	case order.Order[order.Cancelled]:
		cancelledAt := o.State().CancelledAt
		dto.CancelledAt = &cancelledAt
	}

	items, err := marshalLineItems(lineItemDTOs(v.LineItems()))
	if err != nil {
		return OrderDTO{}, err
	}
	dto.LineItems = items

	return dto, nil
}

// toDomain converts a database row back into the typed order its
// discriminator names. A row with an unknown discriminator fails with
// InvalidOrderType; a row whose state columns do not back the
// discriminator fails with MissingField.
func toDomain(dto OrderDTO) (order.Variant, error) {
	switch dto.State {
	case order.StateCreated:
		return restore(dto, order.Created{})
	case order.StateConfirmed:
		if dto.ConfirmedAt == nil {
			return nil, errs.NewMissingFieldError("confirmed_at")
		}
		return restore(dto, order.Confirmed{ConfirmedAt: *dto.ConfirmedAt})
	case order.StateShipped:
		if dto.ConfirmedAt == nil {
			return nil, errs.NewMissingFieldError("confirmed_at")
		}
		if dto.ShippedAt == nil {
			return nil, errs.NewMissingFieldError("shipped_at")
		}
		if dto.TrackingID == nil {
			return nil, errs.NewMissingFieldError("tracking_id")
		}
		return restore(dto, order.Shipped{
			ConfirmedAt: *dto.ConfirmedAt,
			ShippedAt:   *dto.ShippedAt,
			TrackingID:  *dto.TrackingID,
		})
	case order.StateCancelled:
		if dto.CancelledAt == nil {
			return nil, errs.NewMissingFieldError("cancelled_at")
		}
		return restore(dto, order.Cancelled{CancelledAt: *dto.CancelledAt})
	default:
		return nil, errs.NewInvalidOrderTypeError(fmt.Sprintf(
			"unknown state %q for order %s", dto.State, dto.ID))
	}
}

func restore[S order.State](dto OrderDTO, state S) (order.Variant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, errs.NewRepositoryBackendFailureErrorWithCause(
			fmt.Sprintf("corrupt row id %q", dto.ID), err)
	}

	items, err := unmarshalLineItems(dto.LineItems)
	if err != nil {
		return nil, err
	}

	o, err := order.RestoreOrder(id, items, dto.CreatedAt, dto.UpdatedAt, state)
	if err != nil {
		return nil, errs.NewRepositoryBackendFailureErrorWithCause(
			fmt.Sprintf("corrupt row for order %s", dto.ID), err)
	}

	return o, nil
}

func lineItemDTOs(items []order.LineItem) []lineItemDTO {
	dtos := make([]lineItemDTO, 0, len(items))
	for _, li := range items {
		dtos = append(dtos, lineItemDTO{
			ID:       li.ID().Bytes(),
			Quantity: li.Quantity(),
		})
	}
	return dtos
}

func marshalLineItems(dtos []lineItemDTO) ([]byte, error) {
	raw, err := json.Marshal(dtos)
	if err != nil {
		return nil, errs.NewRepositoryBackendFailureErrorWithCause("marshal line items", err)
	}
	return raw, nil
}

func unmarshalLineItems(raw []byte) ([]order.LineItem, error) {
	var dtos []lineItemDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, errs.NewRepositoryBackendFailureErrorWithCause("unmarshal line items", err)
	}

	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, errs.NewRepositoryBackendFailureErrorWithCause(
				fmt.Sprintf("corrupt line item id %q", dto.ID), err)
		}

		li, err := order.NewLineItem(id, dto.Quantity)
		if err != nil {
			return nil, errs.NewRepositoryBackendFailureErrorWithCause(
				fmt.Sprintf("corrupt line item %q", dto.ID), err)
		}

		items = append(items, li)
	}
	return items, nil
}
