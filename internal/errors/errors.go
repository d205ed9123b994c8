package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty")
	ErrEmptyLine       = errors.New("empty line is not a valid JSON value")
	ErrTrailingData    = errors.New("trailing data after JSON value")
	ErrIncompleteValue = errors.New("incomplete JSON value")
	ErrFileNotFound    = errors.New("file not found")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe NDJSON data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// ErrorType categorizes environment-level errors
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeResource ErrorType = "resource"
	ErrorTypeOutput   ErrorType = "output"
	ErrorTypeConfig   ErrorType = "config"
)

// AppError is a fatal, environment-level failure (unreadable file, broken
// stdin, unwritable output). It is disjoint from LineError: the codec never
// produces an AppError, and the reader/CLI never produce a LineError.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to acquiring input
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewResourceError creates a new error related to the environment (files,
// streams) rather than the data inside them
func NewResourceError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeResource,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing results
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to tool configuration
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// LineError is a recoverable, data-level decode failure tied to one specific
// input line. Line is 1-based. It is returned as a normal result value from
// the decode path; decoding stops at the first occurrence.
type LineError struct {
	Line int
	Err  error
}

// Error implements error interface
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying grammar violation
func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError tags a grammar violation with its 1-based line number
func NewLineError(line int, err error) *LineError {
	return &LineError{Line: line, Err: err}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var lineErr *LineError
	if errors.As(err, &lineErr) {
		return fmt.Sprintf("Invalid NDJSON on line %d: %v", lineErr.Line, lineErr.Err)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeResource:
			return fmt.Sprintf("Resource error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Config error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe NDJSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
