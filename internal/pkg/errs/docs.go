// Package errs provides the standardized error types for the orders
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per failure kind in the order
// lifecycle:
//   - EmptyOrderError: creation attempted with zero line items
//   - InvalidTransitionError: a transition precondition failed inside the aggregate
//   - OrderNotFoundError: no stored order for the given ID
//   - InvalidOrderTypeError: operation attempted against an order whose
//     current state does not permit it, or a typed read hit a state mismatch
//   - MissingFieldError: a persisted record's state claims a field that is absent
//   - RepositoryBackendFailureError: the storage backend itself failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrOrderNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All errors are recoverable and reported to the caller by value; none of
// them is ever turned into a panic. The HTTP adapter relies on errors.Is
// against the sentinels to map each kind to a transport status code.
package errs
