package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through
// one of the constructor functions. It is returned when validating a
// zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object representing a universally unique identifier.
// It wraps github.com/google/uuid to keep the external type out of domain
// signatures and to make the zero value detectably invalid.
//
// UUID is immutable and safe for concurrent use. It identifies the Order
// aggregate and outbox messages.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is the primary way
// to mint identifiers for new aggregates.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation. It is used
// when reconstructing identifiers from persistence or request input.
//
// Returns an error if the string is not a valid UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, validating the result.
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

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value, for persistence adapters
// that store identifiers in native uuid columns.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether the UUID is the invalid zero value.
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

// Validate returns ErrUUIDIsNotConstructed for the zero value, nil otherwise.
func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
