package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is the user-facing fallback for internal errors.
	SystemErrorMessage = "Internal Server Error"
	// ValidationErrorMessage prefixes input validation failures.
	ValidationErrorMessage = "Validation failed"
	// StoreUnavailableMessage describes a missing or unreachable database.
	StoreUnavailableMessage = "Database not available"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// Error wraps an underlying error with an HTTP status and a safe message.
type Error struct {
	Err     error
	Status  int
	Message string
	Details []FieldError
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the provided information.
func New(err error, status int, message string) *Error {
	return &Error{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Validation builds a 422 error from field failures. The message names the
// first failing field.
func Validation(details []FieldError) *Error {
	msg := ValidationErrorMessage
	if len(details) > 0 {
		msg = fmt.Sprintf("%s: field '%s' failed on tag '%s'", ValidationErrorMessage, details[0].Field, details[0].Tag)
	}
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Message: msg,
		Details: details,
	}
}

// WrapStore maps a store failure to 503.
func WrapStore(err error) *Error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusServiceUnavailable, StoreUnavailableMessage)
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
