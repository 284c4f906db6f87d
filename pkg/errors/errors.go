// Package errors provides structured error types for epntex.
//
// Every failure that can abort a conversion run carries a machine-readable
// [Code], so the CLI and tests can tell a malformed document apart from a
// network outage or a bad flag without string matching.
//
// # Error Codes
//
//   - UNKNOWN_NODE_KIND: the source tree contains an element no formatting
//     rule handles. Fatal; the run stops instead of dropping content.
//   - MALFORMED_TABLE_LANDMARK: a table matched no known landmark while the
//     strict table policy is active.
//   - NULL_EMISSION: a driver tried to write an absent value to the sink.
//   - INVALID_*: configuration and input validation failures.
//   - NOT_FOUND / NETWORK_ERROR: retrieval failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownNodeKind, "no rule for <%s>", tag)
//	if errors.Is(err, errors.ErrCodeUnknownNodeKind) {
//	    // the document shape changed upstream
//	}
//
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Conversion errors
	ErrCodeUnknownNodeKind        Code = "UNKNOWN_NODE_KIND"
	ErrCodeMalformedTableLandmark Code = "MALFORMED_TABLE_LANDMARK"
	ErrCodeNullEmission           Code = "NULL_EMISSION"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Retrieval errors
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNetwork  Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Fatal reports whether err must abort a conversion run. Conversion errors
// are always fatal; everything else is left to the caller.
func Fatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnknownNodeKind, ErrCodeMalformedTableLandmark, ErrCodeNullEmission:
		return true
	}
	return false
}
