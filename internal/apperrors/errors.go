// Package apperrors provides unified error handling for the service.
// It implements structured error types with error codes and HTTP status
// mapping. The client-facing body always carries a single "detail" message.
package apperrors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is the human-readable message returned to clients as "detail".
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Common Error Constructors ---

// NotFound creates a new AppError for a resource that was not found.
// The message is returned verbatim as the response detail.
func NotFound(message string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: message,
		HTTPStatus: http.StatusNotFound,
	}
}

// Conflict creates a new AppError for a uniqueness violation. The attribute
// detail names which identifying attribute collided.
func Conflict(message, attribute string) *AppError {
	err := &AppError{
		Code: ErrCodeConflict, Message: message,
		HTTPStatus: http.StatusConflict,
	}
	if attribute != "" {
		err = err.WithDetail("attribute", attribute)
	}
	return err
}

// InvalidInput creates a new AppError for semantically invalid input.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Validation creates a new AppError for field-format violations.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeValidation, Message: message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// Unauthorized creates a new AppError for failed authentication.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return &AppError{
		Code: ErrCodeUnauthorized, Message: message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidToken creates a new AppError for an unusable access token. All
// token failure modes collapse to the same message on purpose.
func InvalidToken(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidToken, Message: message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Internal creates a new AppError for unexpected internal failures.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// DatabaseError creates a new AppError for a storage-layer failure.
func DatabaseError(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatabaseError, Message: "Database operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}
