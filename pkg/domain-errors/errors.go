// Package domainerrors defines the tagged error values used across the
// service. Handlers and services create errors with New or Wrap and never
// decide HTTP semantics themselves; the HTTP layer translates codes to
// status codes in exactly one place.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the failure taxonomy for an error.
type Code string

const (
	// CodeBadRequest indicates user-correctable input, e.g. a malformed GUID.
	CodeBadRequest Code = "bad_request"

	// CodeNotFound indicates a well-formed identifier with no matching record.
	CodeNotFound Code = "not_found"

	// CodeInternal indicates a failure the caller cannot correct.
	CodeInternal Code = "internal_error"
)

// Error carries a code, a caller-facing message, and an optional wrapped
// cause. It propagates by value through ordinary error returns.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is/errors.As chains down to the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a tagged error around an underlying cause.
func Wrap(code Code, message string, err error) error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err (or anything it wraps) carries the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// GetCode extracts the code from an error, defaulting to CodeInternal for
// untagged errors.
func GetCode(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
