// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure kind the boundary layer
// recognizes:
//   - ValidationError: malformed or out-of-range input, with a field detail map
//   - ObjectNotFoundError: a referenced entity is absent
//   - ConflictError: duplicate creation of an entity
//   - InvalidTransitionError: illegal order status transition
//   - InvariantViolationError: an operation would break an aggregate invariant
//   - InfrastructureError: unexpected backend or dependency failure
//   - ValueIsRequiredError / ValueIsInvalidError: construction-time failures
//     of value objects and commands
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValidation)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// Use cases return these typed errors instead of transport-specific failures;
// only the HTTP boundary translates error kinds into status codes.
package errs
