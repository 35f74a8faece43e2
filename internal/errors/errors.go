// Package errors defines the structured errors shown to nexus users.
package errors

import (
	"errors"
	"strings"
)

// Codes group errors by the boundary they came from.
const (
	ErrConfig   = "CONFIG"
	ErrInput    = "INPUT"
	ErrRender   = "RENDER"
	ErrServe    = "SERVE"
	ErrInternal = "INTERNAL"
)

// Error is a user-facing failure. It prints as
//
//	✗ Message
//
//	  cause
//
//	  Suggestion
//
// leaving out whichever of cause and suggestion is empty.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New returns an Error with no cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap attaches message to err under ErrInternal.
func Wrap(err error, message string) *Error {
	return WrapWithCode(err, ErrInternal, message, "")
}

// WrapWithCode attaches a code, message and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("✗ " + e.Message + "\n")
	for _, detail := range []string{e.causeText(), e.Suggestion} {
		if detail != "" {
			b.WriteString("\n  " + detail + "\n")
		}
	}
	return b.String()
}

func (e *Error) causeText() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// IsCode reports whether the outermost Error in err's chain carries code.
func IsCode(err error, code string) bool {
	var target *Error
	return errors.As(err, &target) && target.Code == code
}
