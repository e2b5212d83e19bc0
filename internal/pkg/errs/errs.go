package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the error kinds recognized at the application boundary.
// Concrete error structs below wrap exactly one of these via Unwrap, so
// callers can classify any failure with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrObjectNotFound     = errors.New("object not found")
	ErrConflict           = errors.New("object already exists")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrInfrastructure     = errors.New("infrastructure failure")
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
)

// sanitize removes line breaks from values interpolated into error messages.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValidationError reports malformed or out-of-range input. Details carries
// an optional field name to message map describing every offending field.
type ValidationError struct {
	Message string
	Details map[string]string
	Cause   error
}

// NewValidationError creates a ValidationError without field details.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationErrorWithDetails creates a ValidationError carrying a
// field name to message map.
func NewValidationErrorWithDetails(message string, details map[string]string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an
// underlying cause.
func NewValidationErrorWithCause(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Cause: cause}
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrValidation, sanitize(e.Message))
	if len(e.Details) > 0 {
		fields := make([]string, 0, len(e.Details))
		for field := range e.Details {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		msg = fmt.Sprintf("%s (fields: %s)", msg, strings.Join(fields, ", "))
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ObjectNotFoundError reports that a referenced entity is absent.
type ObjectNotFoundError struct {
	Resource string
	ID       string
	Cause    error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for a resource and id.
func NewObjectNotFoundError(resource string, id string) *ObjectNotFoundError {
	return &ObjectNotFoundError{Resource: resource, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(resource string, id string, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{Resource: resource, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectNotFound, sanitize(e.Resource), sanitize(e.ID))
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError reports an attempt to create an entity that already exists.
type ConflictError struct {
	Resource string
	ID       string
}

// NewConflictError creates a ConflictError for a resource and id.
func NewConflictError(resource string, id string) *ConflictError {
	return &ConflictError{Resource: resource, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConflict, sanitize(e.Resource), sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// StaleObjectError reports a lost-update conflict: the aggregate was
// modified by someone else between the load and the save. Unwraps to
// ErrConflict so the boundary classifies it alongside duplicate creation.
type StaleObjectError struct {
	Resource string
	ID       string
}

// NewStaleObjectError creates a StaleObjectError for a resource and id.
func NewStaleObjectError(resource string, id string) *StaleObjectError {
	return &StaleObjectError{Resource: resource, ID: id}
}

func (e *StaleObjectError) Error() string {
	return fmt.Sprintf("stale object version: %s %s", sanitize(e.Resource), sanitize(e.ID))
}

func (e *StaleObjectError) Unwrap() error {
	return ErrConflict
}

// InvalidTransitionError reports an illegal state-machine move, surfaced
// from the aggregate when a lifecycle operation is called in a wrong status.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for a
// rejected move from one status to another.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvariantViolationError reports an operation that would break an
// aggregate invariant, such as removing the last item of an order.
type InvariantViolationError struct {
	Message string
}

// NewInvariantViolationError creates an InvariantViolationError.
func NewInvariantViolationError(message string) *InvariantViolationError {
	return &InvariantViolationError{Message: message}
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, sanitize(e.Message))
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}

// InfrastructureError reports an unexpected backend or dependency failure.
type InfrastructureError struct {
	Op    string
	Cause error
}

// NewInfrastructureError creates an InfrastructureError for a failed
// operation, wrapping the underlying cause.
func NewInfrastructureError(op string, cause error) *InfrastructureError {
	return &InfrastructureError{Op: op, Cause: cause}
}

func (e *InfrastructureError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrInfrastructure, sanitize(e.Op))
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *InfrastructureError) Unwrap() error {
	return ErrInfrastructure
}

// ValueIsRequiredError reports a missing required value during construction
// of a value object or command.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for a parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports an invalid value during construction of a
// value object or command.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for a parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
