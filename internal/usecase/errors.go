package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrExchangeNotFound  = errors.New("exchange request not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrUserNotFound      = errors.New("user not found")

	ErrInvalidExchangeID  = errors.New("invalid exchange request id")
	ErrInvalidWarehouseID = errors.New("invalid warehouse id")
	ErrInvalidCallerID    = errors.New("invalid caller id")

	// ErrNotOwner and ErrAdminRequired mean "you may not do this at all",
	// as opposed to a StateError's "you may not do this yet".
	ErrNotOwner      = errors.New("caller is not the owner of this exchange request")
	ErrAdminRequired = errors.New("administrator privileges required")

	// ErrConcurrentUpdate is returned when a transition's conditional write
	// fails even though the preceding read satisfied every precondition:
	// another writer changed the record in between.
	ErrConcurrentUpdate = errors.New("exchange request was modified concurrently")

	// ErrGatewayUnavailable wraps credit ledger transport failures on read
	// paths, where there is no local state to fall back to.
	ErrGatewayUnavailable = errors.New("credit ledger unavailable")
)

// ValidationError rejects malformed or missing input, naming the field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StateError rejects an operation that is illegal for the record's current
// state, naming the offending field and the current vs. required state.
type StateError struct {
	Field    string
	Current  string
	Required string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s is %q, operation requires %q", e.Field, e.Current, e.Required)
}

func newStateError(field, current, required string) *StateError {
	return &StateError{Field: field, Current: current, Required: required}
}
