// Package errors provides structured error types for the slidegeom engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine, CLI, and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Fatal engine errors abort a diagram build before any geometry is
// returned. Violation codes are never returned as errors; they are
// collected into a validation report instead (see pkg/validate).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeElementCountExceeded, "flowchart has %d steps (max %d)", n, max)
//	if errors.Is(err, errors.ErrCodeElementCountExceeded) {
//	    // Handle structural failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode request %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Fatal engine errors - abort the build, no geometry is returned.
	ErrCodeUnknownDiagramType   Code = "UNKNOWN_DIAGRAM_TYPE"
	ErrCodeNoVariantFits        Code = "NO_VARIANT_FITS"
	ErrCodeElementCountExceeded Code = "ELEMENT_COUNT_EXCEEDED"
	ErrCodeNoKeyDifferentiator  Code = "NO_KEY_DIFFERENTIATOR_MARKED"
	ErrCodeInvalidContent       Code = "INVALID_CONTENT"

	// Request/IO errors outside the engine proper.
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidRequest Code = "INVALID_REQUEST"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Internal errors.
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Violation codes collected by the constraint validator. These are
// non-fatal: geometry is still returned alongside the report.
const (
	ViolationCharacterLimit Code = "CHARACTER_LIMIT_EXCEEDED"
	ViolationMinimumFont    Code = "MINIMUM_FONT_SIZE_VIOLATED"
	ViolationDisconnected   Code = "DISCONNECTED_SHAPE"
	ViolationElementCount   Code = "ELEMENT_COUNT_EXCEEDED"
)

// WarnZeroLengthConnector marks a connector whose endpoints coincide.
// The connector is omitted from the result rather than failing the build.
const WarnZeroLengthConnector Code = "ZERO_LENGTH_CONNECTOR"

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
