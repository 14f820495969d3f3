package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	// Request-level errors
	ErrorTypeValidation      ErrorType = "VALIDATION"
	ErrorTypeUnauthorized    ErrorType = "UNAUTHORIZED"
	ErrorTypeNotFound        ErrorType = "NOT_FOUND"
	ErrorTypeScopeNotFound   ErrorType = "SCOPE_NOT_FOUND"
	ErrorTypeDuplicate       ErrorType = "DUPLICATE"
	ErrorTypeInvalidEndpoint ErrorType = "INVALID_ENDPOINT"

	// Infrastructure errors
	ErrorTypeInternal ErrorType = "INTERNAL"
	ErrorTypeDatabase ErrorType = "DATABASE"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Cause      error     `json:"-"`
	HTTPStatus int       `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for the error taxonomy

// NewValidationError creates an invalid-input error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewScopeNotFoundError reports a graph scope that does not resolve for the
// user. Surfaced as a not-found condition, never as a silent empty scope.
func NewScopeNotFoundError(graphID string) *AppError {
	return &AppError{
		Type:       ErrorTypeScopeNotFound,
		Message:    fmt.Sprintf("graph %s not found", graphID),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewDuplicateError reports a title/name uniqueness violation.
// The API contract returns 400 for duplicates, not 409.
func NewDuplicateError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeDuplicate,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidEndpointError reports an edge endpoint that is not a live node in scope.
func NewInvalidEndpointError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidEndpoint,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeDatabase,
		Message:    fmt.Sprintf("database operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Helper functions

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound) || IsType(err, ErrorTypeScopeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsDuplicate checks if an error is a uniqueness violation
func IsDuplicate(err error) bool {
	return IsType(err, ErrorTypeDuplicate)
}

// IsInvalidEndpoint checks if an error is an invalid edge endpoint error
func IsInvalidEndpoint(err error) bool {
	return IsType(err, ErrorTypeInvalidEndpoint)
}

// Wrap wraps an error with additional context. An AppError in the chain
// keeps its type and status; the original error value is never mutated.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if appErr := GetAppError(err); appErr != nil {
		wrapped := *appErr
		wrapped.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return &wrapped
	}

	// Otherwise create a new internal error
	return NewInternalError(message).WithCause(err)
}
