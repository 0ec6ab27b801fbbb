package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a uniqueness violation on insert.
	ErrConflict = errors.New("already exists")
	// ErrNotPersisted signals a mutation on an entity without an identifier.
	ErrNotPersisted = errors.New("entity is not persisted")
	// ErrInvalidCredentials signals a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError describes a malformed or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
