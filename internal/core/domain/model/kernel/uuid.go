package kernel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through
// one of the constructor functions. It is returned when validating a
// zero-value UUID.
var ErrUUIDIsNotConstructed = errors.New("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object identifying orders and line items. It wraps the
// github.com/google/uuid implementation to keep the domain independent of the
// library type and to make the zero value detectable.
//
// The zero value is invalid; construct UUIDs with NewUUID, UUIDFromString,
// or UUIDFromBytes.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	itemID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is the primary way
// to mint identifiers for new orders.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation. It accepts
// the standard formats understood by github.com/google/uuid. Typically used
// when parsing identifiers from requests or reconstructing orders from
// persistence.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, for example when the
// identifier is stored as binary in a database column.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// representation. Used for logs, JSON, and error messages.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value for integration with
// libraries that expect the google/uuid type.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs represent the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value and nil for
// any UUID created through a constructor function.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
