// Package apperr defines the error kinds surfaced to API callers.
package apperr

import (
	"errors"   // Error unwrapping
	"net/http" // HTTP status codes
)

// Kind classifies an application error
type Kind int

const (
	KindValidation Kind = iota + 1 // Malformed or missing input
	KindConflict                   // Duplicate unique field
	KindAuth                       // Bad credentials, missing or invalid token
	KindNotFound                   // Unknown id
)

// Error is an application error carrying the message returned to the caller
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation returns a ValidationError
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Conflict returns a ConflictError
func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Auth returns an AuthError
func Auth(msg string) error {
	return &Error{Kind: KindAuth, Message: msg}
}

// NotFound returns a NotFoundError
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Is reports whether err is an application error of the given kind
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Status maps an error to its HTTP status code; unknown errors are 500
func Status(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
