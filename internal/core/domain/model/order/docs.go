// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order[S]: the aggregate root, generic over its lifecycle state
//   - Created, Confirmed, Shipped, Cancelled: the state tags, each carrying
//     the data attached to that phase of the lifecycle
//   - LineItem: an immutable product-and-quantity value object
//   - Variant: the closed sum over the four Order instantiations, used
//     wherever the state is only known at runtime
//
// Key business rules:
//   - Orders are created with at least one line item
//   - Line items can be added and removed only while the order is Created
//   - Order state follows a defined workflow:
//     Created -> Confirmed -> Shipped, with cancellation possible from
//     Created and Confirmed; Shipped and Cancelled are terminal
//   - created_at never exceeds updated_at
//
// Encoding the state in the type makes illegal transitions a compile error
// wherever the state is statically known: there is no way to ship an
// Order[Created] or to modify the items of an Order[Confirmed]. Because the
// state of a stored order is discovered only at read time, the package also
// provides Variant, which callers collapse back to a concrete Order[S] via a
// type switch before transitioning.
package order
