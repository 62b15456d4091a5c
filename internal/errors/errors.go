// Package errors provides custom error types for the Stockdex API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation creates a validation error naming the offending field.
func Validation(field, reason string) *AppError {
	return WithMessage(ErrValidation, fmt.Sprintf("%s: %s", field, reason))
}

// Authentication errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrValidation       = &AppError{Code: "VALIDATION_FAILED", Message: "Validation failed", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrStoreUnavailable = &AppError{Code: "STORE_UNAVAILABLE", Message: "The data store is unavailable", StatusCode: http.StatusServiceUnavailable}
)

// Entity lookup errors. ErrUserNotFound doubles as the credential failure:
// an unknown token and a cross-exchange token produce the same signal so
// callers cannot enumerate stocks in other exchanges.
var (
	ErrExchangeNotFound = &AppError{Code: "EXCHANGE_NOT_FOUND", Message: "Exchange not found", StatusCode: http.StatusNotFound}
	ErrUserNotFound     = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrStockNotFound    = &AppError{Code: "STOCK_NOT_FOUND", Message: "Stock not found", StatusCode: http.StatusNotFound}
	ErrLabelNotFound    = &AppError{Code: "LABEL_NOT_FOUND", Message: "Vote label not found", StatusCode: http.StatusNotFound}
)

// Vote and reporting errors.
var (
	ErrInvalidDirection = &AppError{Code: "INVALID_DIRECTION", Message: "Vote direction must be up or down, or implied by a non-zero rating", StatusCode: http.StatusBadRequest}
	ErrInvalidWindow    = &AppError{Code: "INVALID_WINDOW", Message: "Unrecognized reporting window", StatusCode: http.StatusBadRequest}
	ErrDuplicateLabel   = &AppError{Code: "DUPLICATE_LABEL", Message: "A vote label with this symbol already exists", StatusCode: http.StatusConflict}
)
