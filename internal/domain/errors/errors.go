// Package errors defines the application error taxonomy surfaced to clients.
package errors

import (
	"net/http"

	"studyhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input errors fail fast before any network call.
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	// Remote store read failed.
	ErrQueryFailed = NewBaseError(
		http.StatusBadGateway,
		"QUERY_FAILED",
		"Failed to fetch",
		"",
	)

	// File resolution errors
	ErrAuthFailed = NewBaseError(
		http.StatusBadGateway,
		"AUTH_FAILED",
		"Failed to fetch file",
		"",
	)

	ErrCourseFolderNotFound = NewBaseError(
		http.StatusNotFound,
		"COURSE_FOLDER_NOT_FOUND",
		"No file found",
		"course folder not found",
	)

	ErrFileNotFound = NewBaseError(
		http.StatusNotFound,
		"FILE_NOT_FOUND",
		"No file found",
		"file not found",
	)

	// Identity and access errors
	ErrIdentityRejected = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_REJECTED",
		"Sign-in token was rejected",
		"",
	)

	// Admin panel errors
	ErrUploadRejected = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UPLOAD_REJECTED",
		"Only PDF files can be uploaded",
		"",
	)

	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"The file exceeds the upload limit",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_FAILED",
		"Failed to store file",
		"",
	)

	// Feedback relay
	ErrFeedbackNotDelivered = NewBaseError(
		http.StatusBadGateway,
		"FEEDBACK_NOT_DELIVERED",
		"Feedback could not be sent, please try again",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// ResolutionError is a transport failure while talking to the file host.
// Payload carries the provider's error text when one was returned.
type ResolutionError struct {
	err     error
	payload string
}

// NewResolutionError creates a file host transport error
func NewResolutionError(err error, payload string) AppError {
	return &ResolutionError{
		err:     err,
		payload: payload,
	}
}

// Error implements the error interface
func (e *ResolutionError) Error() string {
	return errors.Wrap(e.err, "file resolution failed").Error()
}

// Unwrap exposes the transport error
func (e *ResolutionError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ResolutionError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ResolutionError) ErrorCode() string {
	return "RESOLUTION_FAILED"
}

// Message returns the provider payload verbatim, or a generic fallback
func (e *ResolutionError) Message() string {
	if e.payload != "" {
		return e.payload
	}

	return "Failed to fetch file"
}

// Details returns detailed error information
func (e *ResolutionError) Details() string {
	return e.payload
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
