package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the order lifecycle. Callers classify failures with
// errors.Is against these values.
var (
	ErrEmptyOrder               = errors.New("order must have at least one item")
	ErrInvalidTransition        = errors.New("invalid state transition")
	ErrOrderNotFound            = errors.New("order not found")
	ErrInvalidOrderType         = errors.New("invalid order type")
	ErrMissingField             = errors.New("missing field")
	ErrRepositoryBackendFailure = errors.New("repository backend failure")
)

// sanitize strips newlines from values interpolated into error messages so a
// single log line stays a single line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// EmptyOrderError is returned when an order is created with no line items.
type EmptyOrderError struct {
	Cause error
}

// NewEmptyOrderError creates an EmptyOrderError without an underlying cause.
func NewEmptyOrderError() *EmptyOrderError {
	return &EmptyOrderError{}
}

// NewEmptyOrderErrorWithCause creates an EmptyOrderError wrapping a cause.
func NewEmptyOrderErrorWithCause(cause error) *EmptyOrderError {
	return &EmptyOrderError{Cause: cause}
}

func (e *EmptyOrderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrEmptyOrder, sanitize(e.Cause.Error()))
	}
	return ErrEmptyOrder.Error()
}

func (e *EmptyOrderError) Unwrap() error {
	return ErrEmptyOrder
}

// InvalidTransitionError is returned when a transition precondition fails
// inside the aggregate. Reserved for stricter aggregate-level checks; the
// current transitions are total once their source state is established.
type InvalidTransitionError struct {
	Details string
	Cause   error
}

// NewInvalidTransitionError creates an InvalidTransitionError with details
// describing the rejected transition.
func NewInvalidTransitionError(details string) *InvalidTransitionError {
	return &InvalidTransitionError{Details: details}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError
// wrapping a cause.
func NewInvalidTransitionErrorWithCause(details string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Details: details, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidTransition, sanitize(e.Details), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidTransition, sanitize(e.Details))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// OrderNotFoundError is returned when no stored order exists for an ID.
type OrderNotFoundError struct {
	ID    string
	Cause error
}

// NewOrderNotFoundError creates an OrderNotFoundError for the given order ID.
func NewOrderNotFoundError(id string) *OrderNotFoundError {
	return &OrderNotFoundError{ID: id}
}

// NewOrderNotFoundErrorWithCause creates an OrderNotFoundError wrapping a cause.
func NewOrderNotFoundErrorWithCause(id string, cause error) *OrderNotFoundError {
	return &OrderNotFoundError{ID: id, Cause: cause}
}

func (e *OrderNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrOrderNotFound, sanitize(e.ID), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrOrderNotFound, sanitize(e.ID))
}

func (e *OrderNotFoundError) Unwrap() error {
	return ErrOrderNotFound
}

// InvalidOrderTypeError is returned when an operation is attempted against an
// order whose current state does not permit it, or when a typed read finds a
// state different from the one requested. Details names the attempted
// operation and the order's actual state and ID.
type InvalidOrderTypeError struct {
	Details string
	Cause   error
}

// NewInvalidOrderTypeError creates an InvalidOrderTypeError with a
// human-readable explanation of the rejected operation.
func NewInvalidOrderTypeError(details string) *InvalidOrderTypeError {
	return &InvalidOrderTypeError{Details: details}
}

// NewInvalidOrderTypeErrorWithCause creates an InvalidOrderTypeError wrapping
// a cause.
func NewInvalidOrderTypeErrorWithCause(details string, cause error) *InvalidOrderTypeError {
	return &InvalidOrderTypeError{Details: details, Cause: cause}
}

func (e *InvalidOrderTypeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidOrderType, sanitize(e.Details), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidOrderType, sanitize(e.Details))
}

func (e *InvalidOrderTypeError) Unwrap() error {
	return ErrInvalidOrderType
}

// MissingFieldError is returned when a persisted record's state discriminator
// implies a field that is absent from the record. It signals storage
// corruption or a conversion bug, never a caller mistake.
type MissingFieldError struct {
	Field string
	Cause error
}

// NewMissingFieldError creates a MissingFieldError for the named field.
func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// NewMissingFieldErrorWithCause creates a MissingFieldError wrapping a cause.
func NewMissingFieldErrorWithCause(field string, cause error) *MissingFieldError {
	return &MissingFieldError{Field: field, Cause: cause}
}

func (e *MissingFieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrMissingField, sanitize(e.Field), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrMissingField, sanitize(e.Field))
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// RepositoryBackendFailureError is returned when the storage backend itself
// fails, independent of the order being operated on.
type RepositoryBackendFailureError struct {
	Details string
	Cause   error
}

// NewRepositoryBackendFailureError creates a RepositoryBackendFailureError
// with details about the failing backend operation.
func NewRepositoryBackendFailureError(details string) *RepositoryBackendFailureError {
	return &RepositoryBackendFailureError{Details: details}
}

// NewRepositoryBackendFailureErrorWithCause creates a
// RepositoryBackendFailureError wrapping a cause.
func NewRepositoryBackendFailureErrorWithCause(details string, cause error) *RepositoryBackendFailureError {
	return &RepositoryBackendFailureError{Details: details, Cause: cause}
}

func (e *RepositoryBackendFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrRepositoryBackendFailure, sanitize(e.Details), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrRepositoryBackendFailure, sanitize(e.Details))
}

func (e *RepositoryBackendFailureError) Unwrap() error {
	return ErrRepositoryBackendFailure
}
