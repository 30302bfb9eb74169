package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/authors-api/internal/api/shared"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/store"
)

// Client-facing error messages.
const (
	MsgAuthorNotFound   = "No Author matches the given query"
	MsgInvalidAuthorID  = "Invalid author ID"
	MsgInvalidRequest   = "Invalid request format"
	MsgValidationFailed = "Validation error"
	MsgInternalError    = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusInternalServerError

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrMalformedBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	var (
		domainErr      *domain.ValidationError
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.Is(err, store.ErrNotFound):
		return MsgAuthorNotFound

	case errors.Is(err, domain.ErrInvalidID):
		return MsgInvalidAuthorID

	case errors.Is(err, shared.ErrMalformedBody):
		return MsgInvalidRequest

	case errors.As(err, &domainErr):
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainReason(domainErr.Err))

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgValidationFailed

	default:
		return MsgInternalError
	}
}

// SanitizeValidationError turns validator errors into a message naming the
// first failing field, e.g. "Invalid first_name: required field".
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return MsgValidationFailed
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// HandleAPIError writes the status and safe message for err. A non-empty
// message overrides the default safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// domainReason maps domain validation errors to the same vocabulary as
// getValidationTagMessage.
func domainReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyFirstName),
		errors.Is(err, domain.ErrEmptyLastName):
		return "required field"
	case errors.Is(err, domain.ErrNameTooLong):
		return "too long"
	case errors.Is(err, domain.ErrInvalidCharacters):
		return "invalid characters"
	default:
		return "validation failed"
	}
}
