// Package apperr defines the application error taxonomy. Services return
// these typed errors and the HTTP layer translates them to responses, so a
// failure's status travels with the error instead of being decided per
// handler.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application failure carrying an HTTP-equivalent status.
type Error struct {
	Status  int
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// InvalidArgument reports missing, empty, or malformed input. Checked
// before any I/O.
func InvalidArgument(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound reports that a referenced entity does not exist.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict reports an attempt to create an entity at an id that is taken.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Internal wraps an unexpected store or backend failure.
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf returns the HTTP status for err: the attached status for an
// apperr.Error, 500 for anything else.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for err. Non-application errors
// are masked so internal details never reach a response body.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal Server Error"
}
