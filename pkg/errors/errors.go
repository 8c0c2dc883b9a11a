package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrConfigCreate   ErrorCode = "CONFIG_CREATE"

	// Trigger errors
	ErrTriggerParse   ErrorCode = "TRIGGER_PARSE"
	ErrTriggerNoMatch ErrorCode = "TRIGGER_NO_MATCH"

	// Variable errors
	ErrVarCapture      ErrorCode = "VAR_CAPTURE"
	ErrVarNoMatch      ErrorCode = "VAR_NO_MATCH"
	ErrVarMissingInput ErrorCode = "VAR_MISSING_INPUT"
	ErrVarUnsupported  ErrorCode = "VAR_UNSUPPORTED"

	// Pipe errors
	ErrPipeCreate ErrorCode = "PIPE_CREATE"
	ErrPipeDelete ErrorCode = "PIPE_DELETE"
	ErrPipeOpen   ErrorCode = "PIPE_OPEN"

	// Execution errors
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"
)

// TertestrialError is a structured error with a code, a message for the
// user and an optional hint telling them how to fix the problem.
type TertestrialError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TertestrialError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TertestrialError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TertestrialError) Is(target error) bool {
	var targetErr *TertestrialError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TertestrialError with the given code and message
func New(code ErrorCode, message string) *TertestrialError {
	return &TertestrialError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TertestrialError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TertestrialError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. Returns nil for a nil error.
func Wrap(err error, code ErrorCode, message string) *TertestrialError {
	if err == nil {
		return nil
	}
	wrapped := New(code, message)
	wrapped.Wrapped = err
	return wrapped
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TertestrialError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithHint attaches actionable guidance for the user
func (e *TertestrialError) WithHint(hint string) *TertestrialError {
	e.Hint = hint
	return e
}

// WithDetail adds a detail to the error
func (e *TertestrialError) WithDetail(key string, value interface{}) *TertestrialError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tErr *TertestrialError
	if errors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TertestrialError
func GetErrorCode(err error) ErrorCode {
	var tErr *TertestrialError
	if errors.As(err, &tErr) {
		return tErr.Code
	}
	return ErrUnknown
}

// GetHint returns the first hint found in the error chain
func GetHint(err error) string {
	for err != nil {
		var tErr *TertestrialError
		if !errors.As(err, &tErr) {
			return ""
		}
		if tErr.Hint != "" {
			return tErr.Hint
		}
		err = tErr.Wrapped
	}
	return ""
}

// GetMessage returns the user-facing message of the outermost
// TertestrialError, or the plain error text otherwise.
func GetMessage(err error) string {
	var tErr *TertestrialError
	if errors.As(err, &tErr) {
		if tErr.Wrapped != nil {
			return fmt.Sprintf("%s: %v", tErr.Message, tErr.Wrapped)
		}
		return tErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
