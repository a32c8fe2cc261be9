package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an expected failure. Handlers and tests match on the kind,
// never on message content.
type Kind string

const (
	KindValidationFailed   Kind = "VALIDATION_FAILED"
	KindConflict           Kind = "CONFLICT"
	KindUnauthenticated    Kind = "UNAUTHENTICATED"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindNotFound           Kind = "NOT_FOUND"
	KindInternal           Kind = "INTERNAL"
)

// Error is a typed service error carrying its user-visible message.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New creates a typed error.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func ValidationFailed(message string) *Error { return New(KindValidationFailed, message) }
func Conflict(message string) *Error         { return New(KindConflict, message) }
func Unauthenticated(message string) *Error  { return New(KindUnauthenticated, message) }
func Unauthorized(message string) *Error     { return New(KindUnauthorized, message) }
func InvalidCredentials(message string) *Error {
	return New(KindInvalidCredentials, message)
}
func NotFound(message string) *Error { return New(KindNotFound, message) }
func Internal(message string) *Error { return New(KindInternal, message) }

// KindOf returns the kind of a typed error, or KindInternal for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps an error to its HTTP status code. Conflict maps to 400 to match
// the duplicate-account response of the public API.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidationFailed, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated, KindUnauthorized, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
