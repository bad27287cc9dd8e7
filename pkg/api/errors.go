package api

import "net/http"

// Error defines a standard error shape for the API.
type Error struct {
	// HTTP Status Code (e.g., 400, 404, 500)
	Code int
	// Safe message for the client
	Message string
	// Extra detail rendered alongside the message (e.g. field errors)
	Metadata map[string]any
	// Original error for internal logging
	Log error
}

// Error implements standard error interface
func (e *Error) Error() string {
	return e.Message
}

// NotFoundError creates a standard 404 error
func NotFoundError(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Message: msg}
}

// BadRequestError creates a standard error for a bad request
func BadRequestError(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

// UnauthorizedError creates a 401 unauthed error
func UnauthorizedError(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: msg}
}

// RateLimitError creates standard 429 rate limit error
func RateLimitError(msg string) *Error {
	return &Error{Code: http.StatusTooManyRequests, Message: msg}
}

// InternalError creates a standard error for any internal server error
func InternalError(msg string, err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: msg, Log: err}
}

// ValidationError creates a 422 carrying per-field messages
func ValidationError(fields map[string]string) *Error {
	return &Error{
		Code:     http.StatusUnprocessableEntity,
		Message:  "One or more fields failed validation",
		Metadata: map[string]any{"errors": fields},
	}
}
