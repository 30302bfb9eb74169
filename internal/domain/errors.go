package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyFirstName is returned when an author has no first name.
	ErrEmptyFirstName = errors.New("first name cannot be empty")

	// ErrEmptyLastName is returned when an author has no last name.
	ErrEmptyLastName = errors.New("last name cannot be empty")

	// ErrNameTooLong is returned when a name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("name is too long")

	// ErrInvalidCharacters is returned when a name holds a NUL byte or is
	// not valid UTF-8.
	ErrInvalidCharacters = errors.New("name contains invalid characters")
)

// ValidationError carries the field that failed validation along with the
// underlying reason. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap exposes the specific reason.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrValidation so callers can test for the
// whole class without knowing the field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
