// Package errors provides structured errors with codes for the console.
// Failures carry a machine-checkable code, optional context, and a
// retryable hint; none of them is fatal to the process.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a structured error code.
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Gateway errors
	ErrCodeTransport ErrorCode = "TRANSPORT"
	ErrCodeBadStatus ErrorCode = "BAD_STATUS"
	ErrCodeDecode    ErrorCode = "DECODE"

	// Console store errors
	ErrCodeValidation     ErrorCode = "VALIDATION"
	ErrCodePartialRefresh ErrorCode = "PARTIAL_REFRESH"

	// Generic
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Error is a structured console error.
type Error struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Context    map[string]any
	Retryable  bool
}

// New creates a new structured error.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap wraps an existing error with console error context.
// Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
		Context:    make(map[string]any),
	}
}

// WithContext adds a context key-value pair to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithRetryable marks the error as retryable by re-invoking the
// originating protocol.
func (e *Error) WithRetryable(retryable bool) *Error {
	e.Retryable = retryable
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if len(e.Context) > 0 {
		sb.WriteString(" {")
		first := true
		for k, v := range e.Context {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%s: %v", k, v))
			first = false
		}
		sb.WriteString("}")
	}
	if e.Underlying != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Underlying))
	}
	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// IsCode checks if an error carries a specific error code.
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error chain. Plain errors map
// to ErrCodeInternal; nil maps to the empty code.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	for err != nil {
		if ce, ok := err.(*Error); ok {
			return ce.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrCodeInternal
}

// IsTransport reports whether the error is any gateway-side failure:
// network, non-2xx status, or malformed payload.
func IsTransport(err error) bool {
	switch GetCode(err) {
	case ErrCodeTransport, ErrCodeBadStatus, ErrCodeDecode:
		return true
	}
	return false
}

// IsRetryable checks if an error is marked retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	ce, ok := err.(*Error)
	if !ok {
		return false
	}
	return ce.Retryable
}
