package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error codes for the application error taxonomy. Every failure that reaches
// the router boundary maps to exactly one of these.
const (
	CodeInvalidInput    = "ERR_INVALID_INPUT"
	CodeNotFound        = "ERR_NOT_FOUND"
	CodeConfiguration   = "ERR_CONFIGURATION"
	CodeUpstreamFailure = "ERR_UPSTREAM_FAILURE"
	CodeTimeout         = "ERR_TIMEOUT"
	CodeInternal        = "ERR_INTERNAL"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// NewAppError creates a new application error.
func NewAppError(code, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// BadRequestError creates a 400 invalid-input error.
func BadRequestError(message string) *AppError {
	return NewAppError(CodeInvalidInput, message, http.StatusBadRequest)
}

// BadRequestErrorf creates a 400 error with formatting.
func BadRequestErrorf(format string, a ...interface{}) *AppError {
	return BadRequestError(fmt.Sprintf(format, a...))
}

// NotFoundError creates a 404 error.
func NotFoundError(message string) *AppError {
	return NewAppError(CodeNotFound, message, http.StatusNotFound)
}

// NotFoundErrorf creates a 404 error with formatting.
func NotFoundErrorf(format string, a ...interface{}) *AppError {
	return NotFoundError(fmt.Sprintf(format, a...))
}

// ConfigurationError creates a 502 error for a provider that is missing
// required credentials. The message is fixed so credential names never leak
// to callers.
func ConfigurationError(provider string) *AppError {
	return NewAppError(CodeConfiguration,
		fmt.Sprintf("provider %s is not configured, contact the administrator", provider),
		http.StatusBadGateway)
}

// UpstreamError creates a 502 error for a failed upstream call.
func UpstreamError(message string) *AppError {
	return NewAppError(CodeUpstreamFailure, message, http.StatusBadGateway)
}

// UpstreamErrorf creates a 502 error with formatting.
func UpstreamErrorf(format string, a ...interface{}) *AppError {
	return UpstreamError(fmt.Sprintf(format, a...))
}

// TimeoutError creates a 504 error for an upstream call that exceeded its
// deadline.
func TimeoutError(message string) *AppError {
	return NewAppError(CodeTimeout, message, http.StatusGatewayTimeout)
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError(CodeInternal, message, http.StatusInternalServerError)
}

// MapUpstreamError classifies an upstream call failure. Deadline expiry maps
// to Timeout, everything else to UpstreamFailure.
func MapUpstreamError(provider string, err error) *AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return TimeoutError(fmt.Sprintf("provider %s timed out", provider)).WithError(err)
	}
	var se *StatusError
	if errors.As(err, &se) {
		return UpstreamErrorf("provider %s returned status %d", provider, se.StatusCode).WithError(err)
	}
	return UpstreamErrorf("provider %s request failed", provider).WithError(err)
}
