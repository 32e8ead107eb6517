package apperrors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON body returned to clients. Only the detail
// message (and field-level validation context, when present) is exposed;
// codes and causes stay server-side.
type ErrorResponse struct {
	Detail string         `json:"detail"`
	Fields map[string]any `json:"fields,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
func (e *AppError) ToResponse() ErrorResponse {
	resp := ErrorResponse{Detail: e.Message}
	if e.Code == ErrCodeValidation && e.Details != nil {
		resp.Fields = e.Details
	}
	return resp
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
