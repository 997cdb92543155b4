package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/service/auth"
	"github.com/phrazzld/sarisari-api/internal/store"
)

// Client-facing messages shared by every entity kind.
const (
	msgDatabaseError    = "Database error"
	msgNoValidFields    = "No valid fields provided for update"
	msgInvalidToken     = "Invalid token"
	msgBadCredentials   = "Bad credentials"
	msgInvalidRequest   = "Invalid request format"
	msgNotFound         = "Not found"
	msgAlreadyExists    = "Already exists"
	msgValidationFailed = "Validation error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrNoFields):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
// Entity-specific wording is applied by the resource handlers.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgDatabaseError
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return msgBadCredentials

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return msgInvalidToken

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return msgNotFound

	case errors.Is(err, store.ErrDuplicate):
		return msgAlreadyExists

	case errors.Is(err, store.ErrNoFields):
		return msgNoValidFields

	case errors.Is(err, domain.ErrValidation):
		return msgValidationFailed

	default:
		return msgDatabaseError
	}
}

// kindErrorMessage is GetSafeErrorMessage with the kind's own wording for
// missing and conflicting records.
func kindErrorMessage(kind domain.Kind, err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, domain.ErrInvalidID):
		return kind.NotFoundMessage()
	case errors.Is(err, store.ErrDuplicate):
		return kind.ConflictMessage
	default:
		return GetSafeErrorMessage(err)
	}
}

// validationMessages turns validator failures into client messages keyed by
// the lowercased field name, e.g. "username is required".
func validationMessages(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{msgValidationFailed}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return messages
}
