package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err carries the given code
func HasCode(err error, code string) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// Error codes
//
// CodeConfigInvalid covers malformed or incomplete parameter tables and is
// always fatal before any generation starts. CodeLookup means an attribute
// fell outside every configured bucket or category; it aborts the batch
// rather than silently defaulting. CodeValidation marks values outside a
// physically valid range.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeLookup        = "LOOKUP_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
	CodeIO            = "IO_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func ConfigInvalidf(format string, args ...interface{}) *AppError {
	return New(CodeConfigInvalid, fmt.Sprintf(format, args...))
}

func Lookup(message string) *AppError {
	return New(CodeLookup, message)
}

func Lookupf(format string, args ...interface{}) *AppError {
	return New(CodeLookup, fmt.Sprintf(format, args...))
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

func Validationf(format string, args ...interface{}) *AppError {
	return New(CodeValidation, fmt.Sprintf(format, args...))
}

func IO(message string, cause error) *AppError {
	return &AppError{Code: CodeIO, Message: message, Cause: cause}
}

// IsConfigInvalid checks for table configuration failures
func IsConfigInvalid(err error) bool { return HasCode(err, CodeConfigInvalid) }

// IsLookup checks for bucket/category lookup failures
func IsLookup(err error) bool { return HasCode(err, CodeLookup) }

// IsValidation checks for out-of-range value failures
func IsValidation(err error) bool { return HasCode(err, CodeValidation) }
