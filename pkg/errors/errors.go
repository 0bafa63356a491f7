// Package errors provides coded errors for the fallible parts of ansiout:
// loading configuration, composing styles and handling command input.
// Rendering markup never fails and does not use this package.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// ErrorCode classifies a failure. Tests match on it and the CLI derives its
// exit status from it.
type ErrorCode string

const (
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Styling and output
	ErrStyleInvalid ErrorCode = "STYLE_INVALID"
	ErrOutputWrite  ErrorCode = "OUTPUT_WRITE"
)

// Usage reports whether the code means the user supplied bad input or
// configuration, as opposed to a failure while producing output.
func (c ErrorCode) Usage() bool {
	switch c {
	case ErrInvalidInput, ErrConfigLoad, ErrConfigParse, ErrConfigValid:
		return true
	}
	return false
}

// Error is a coded error with optional details and cause.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithDetail records a key/value pair on the error and returns it.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Wrapped: err}
}

func Wrapf(err error, code ErrorCode, format string, args ...any) *Error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// CodeOf returns the code of the outermost *Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// IsErrorCode reports whether any *Error in err's chain carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// Details merges the details of every *Error in err's chain. Outer errors
// win on duplicate keys. It returns nil when there are none.
func Details(err error) map[string]any {
	var chain []*Error
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && len(e.Details) > 0 {
			chain = append(chain, e)
		}
	}
	if len(chain) == 0 {
		return nil
	}
	details := make(map[string]any)
	for i := len(chain) - 1; i >= 0; i-- {
		maps.Copy(details, chain[i].Details)
	}
	return details
}
