// Package kernel provides core domain primitives shared across the orders
// system: the UUID identifier, the Currency and Money value objects, and the
// DomainEvent record carried from use cases to the event bus.
//
// All types in this package are immutable value objects constructed through
// factory functions that enforce their invariants. Zero values are invalid
// and fail Validate, which matters when reconstructing state from
// persistence or external input.
package kernel
