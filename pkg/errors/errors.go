// Package errors provides structured error types for tableau.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the layout engine, renderers and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes fall into three categories that mirror how a caller reacts:
//   - Configuration errors (INVALID_*, DUPLICATE_PILE): the shape parameters
//     or the requested anchor are wrong. Fix the input.
//   - Lookup errors (PILE_NOT_FOUND): a region references a pile that was
//     never realized. This is a defect in the engine or the adapter.
//   - Adapter I/O errors (ADAPTER_IO): an image could not be loaded. Layout
//     is unaffected and rendering falls back to a solid background.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "sumo: reserves must be even, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeAdapterIO, origErr, "load background %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidAnchor Code = "INVALID_ANCHOR"
	ErrCodeInvalidFamily Code = "INVALID_FAMILY"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeDuplicatePile Code = "DUPLICATE_PILE"

	// Lookup errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodePileNotFound   Code = "PILE_NOT_FOUND"
	ErrCodePresetNotFound Code = "PRESET_NOT_FOUND"

	// Rendering adapter errors
	ErrCodeAdapterIO Code = "ADAPTER_IO"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

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

// IsConfiguration reports whether err is caused by invalid or contradictory
// input, as opposed to an engine defect or an I/O failure.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInvalidAnchor, ErrCodeInvalidFamily,
		ErrCodeInvalidFormat, ErrCodeInvalidInput, ErrCodeDuplicatePile:
		return true
	}
	return false
}

// SuggestionError is returned when a name could not be resolved but a close
// match exists.
type SuggestionError struct {
	Kind       string // "family", "preset", "parameter"
	Name       string
	Suggestion string
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown %s %q (did you mean %q?)", e.Kind, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}
