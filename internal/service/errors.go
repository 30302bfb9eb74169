package service

import "fmt"

// AuthorServiceError is returned for unexpected failures inside the author
// service. Expected conditions (not found, validation) are returned as
// their sentinel errors instead.
type AuthorServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for AuthorServiceError.
func (e *AuthorServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("author service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("author service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AuthorServiceError) Unwrap() error {
	return e.Err
}

// NewAuthorServiceError creates a new AuthorServiceError.
func NewAuthorServiceError(operation, message string, err error) *AuthorServiceError {
	return &AuthorServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
