// Package order provides the Order aggregate and its business rules for the
// orders system: item management, totals, and the status lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning items, status, timestamps, and metadata
//   - Item: an immutable order line value object
//   - Status: a state machine enforcing valid lifecycle transitions
//   - Snapshot: the primitive representation used by adapters and events
//   - domain event constructors for order.created and order.item_added
//
// Key business rules:
//   - an order always has at least one item
//   - product ids are unique within an order; adding a duplicate merges
//     quantities and takes the new unit price
//   - the lifecycle is pending -> confirmed -> paid -> shipped, with
//     cancellation possible from any state except shipped
//   - mutations either fully apply or leave the aggregate unchanged
//
// The package follows Domain-Driven Design principles: construction only
// through validating factories, private fields, and invariants enforced by
// aggregate operations.
package order
