package schemaerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrMalformedDocument indicates the input could not be decoded.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrReference indicates any $ref resolution failure.
	ErrReference = errors.New("reference error")

	// ErrDanglingReference indicates a $ref pointer segment is missing or out of range.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrCyclicReference indicates a $ref chain revisits a pointer on the active resolution path.
	ErrCyclicReference = errors.New("cyclic reference")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// MalformedDocumentError represents input that is not well-formed structured text.
type MalformedDocumentError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the 1-based line number where decoding failed (0 if unknown)
	Line int
	// Column is the 1-based column number where decoding failed (0 if unknown)
	Column int
	// Offset is the byte offset where decoding failed (-1 if unknown)
	Offset int64
	// Message describes the failure
	Message string
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MalformedDocumentError) Error() string {
	msg := "malformed document"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MalformedDocumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// ReferenceError represents a failure to resolve a $ref pointer.
type ReferenceError struct {
	// Ref is the pointer string that failed to resolve
	Ref string
	// Segment is the pointer segment at which the walk failed (empty if not applicable)
	Segment string
	// IsCircular is true if the pointer is already being resolved on the active path
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "dangling reference"
	if e.IsCircular {
		msg = "cyclic reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(" (segment %q)", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference always, and ErrCyclicReference or ErrDanglingReference
// depending on IsCircular.
func (e *ReferenceError) Is(target error) bool {
	switch target {
	case ErrReference:
		return true
	case ErrCyclicReference:
		return e.IsCircular
	case ErrDanglingReference:
		return !e.IsCircular
	}
	return false
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
