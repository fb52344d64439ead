package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrCommand  = "COMMAND"
	ErrEnv      = "ENV"
	ErrTerminal = "TERMINAL"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewInvalidCommand reports a line command that is not in the command table.
func NewInvalidCommand(name string) *Error {
	return &Error{
		Code:       ErrCommand,
		Message:    fmt.Sprintf("%s is not a valid command", name),
		Suggestion: "Type 'help' to list the available commands",
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// As returns the first structured Error in err's chain.
func As(err error) (*Error, bool) {
	var klErr *Error
	if err == nil || !errors.As(err, &klErr) {
		return nil, false
	}
	return klErr, true
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	klErr, ok := As(err)
	return ok && klErr.Code == code
}
