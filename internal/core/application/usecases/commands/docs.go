// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: a
// constructor-guarded command object, then a handler that loads the order
// variant, establishes the concrete state via a type switch, applies the
// typestate transition, and saves the result.
//
// The load-check-save sequence is not transactional: a concurrent writer can
// interleave between a handler's load and save for the same order ID and the
// later save wins. Callers that need linearizable transitions must layer an
// optimistic-concurrency token on top of the repository contract.
package commands
