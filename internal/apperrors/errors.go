// Package apperrors provides the error taxonomy shared by the façade.
// Every failure surfaced to a client goes through an AppError so responses
// never leak upstream internals.
package apperrors

import "net/http"

// AppError is a structured application error with a stable code, a
// human-readable message, the HTTP status it maps to, and an optional
// internal cause.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal cause for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is a sentinel with the same code, so wrapped
// errors still match their sentinel via errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of sentinel carrying internal as its cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Request-side errors.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound     = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
)

// Upstream-side errors. The provider being misconfigured or broken is our
// fault from the caller's perspective, hence 502/503 rather than 401.
var (
	ErrRateLimited          = &AppError{Code: "RATE_LIMITED", Message: "Upstream provider rate limit exceeded", StatusCode: http.StatusTooManyRequests}
	ErrUpstreamUnauthorized = &AppError{Code: "UPSTREAM_UNAUTHORIZED", Message: "Upstream provider rejected our credentials", StatusCode: http.StatusBadGateway}
	ErrProvider             = &AppError{Code: "PROVIDER_ERROR", Message: "Upstream provider returned an error", StatusCode: http.StatusBadGateway}
	ErrBadUpstreamData      = &AppError{Code: "BAD_UPSTREAM_DATA", Message: "Upstream provider returned malformed data", StatusCode: http.StatusBadGateway}
	ErrUnavailable          = &AppError{Code: "UPSTREAM_UNAVAILABLE", Message: "Upstream provider is unreachable", StatusCode: http.StatusServiceUnavailable}
)

// ErrInternal is the generic fallback for unexpected failures.
var ErrInternal = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
