package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeUsage indicates a malformed command line (unknown flag,
	// non-numeric value, bad positional arguments)
	ErrorTypeUsage ErrorType = "usage"
	// ErrorTypeDomain indicates a numeric input outside its physical
	// domain (zero or negative where strictly positive is required)
	ErrorTypeDomain ErrorType = "domain"
	// ErrorTypeInternal indicates an unexpected internal failure
	ErrorTypeInternal ErrorType = "internal"
)

// Process exit codes. Usage and domain failures share the conventional
// argument-parser exit code.
const (
	ExitSuccess  = 0
	ExitInternal = 1
	ExitUsage    = 2
)

// AppError is the base error type for application errors
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Usagef creates a usage error with formatting
func Usagef(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapUsage wraps an error as a usage error
func WrapUsage(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: message,
		Err:     err,
	}
}

// Domainf creates a domain error with formatting
func Domainf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeDomain,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapInternal wraps an error as an internal error
func WrapInternal(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// GetType returns the error type of an error
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// ExitCode maps an error to the process exit code the CLI reports.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch GetType(err) {
	case ErrorTypeUsage, ErrorTypeDomain:
		return ExitUsage
	default:
		return ExitInternal
	}
}
