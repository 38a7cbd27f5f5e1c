package errors

import (
	"net/http"

	"fittrack/internal/errors"
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
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithCause attaches an underlying failure. The result still matches e under
// errors.Is and also matches cause; its details carry the cause's message.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return e
	}

	return errors.WithStack(&causedError{
		BaseError: &BaseError{
			httpCode:  e.httpCode,
			errorCode: e.errorCode,
			message:   e.message,
			details:   cause.Error(),
		},
		base:  e,
		cause: cause,
	})
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

type causedError struct {
	*BaseError
	base  *BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.message + ", " + e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	return []error{e.base, e.cause}
}

// Predefined error types
var (
	// User-related errors
	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid id",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUsersNotFound = NewBaseError(
		http.StatusNotFound,
		"USERS_NOT_FOUND",
		"Users not found",
		"",
	)

	// ErrUserAlreadyExists is returned by AddUser instead of inserting when the
	// username or email is taken.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Username or email already exists",
		"",
	)

	ErrCannotEditOtherUsers = NewBaseError(
		http.StatusUnauthorized,
		"CANNOT_EDIT_OTHER_USERS",
		"Cannot edit other users",
		"",
	)

	ErrCannotDeleteOtherUsers = NewBaseError(
		http.StatusUnauthorized,
		"CANNOT_DELETE_OTHER_USERS",
		"Cannot delete other users",
		"",
	)

	ErrFriendCleanupFailed = NewBaseError(
		http.StatusInternalServerError,
		"FRIEND_CLEANUP_FAILED",
		"Failed to remove deleted user from friends lists",
		"",
	)

	ErrInvalidUserDocument = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_USER_DOCUMENT",
		"Stored user record is malformed",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect username or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Could not validate credentials",
		"",
	)

	ErrUserDisabled = NewBaseError(
		http.StatusBadRequest,
		"USER_DISABLED",
		"Inactive user",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

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

// Unwrap exposes the driver error.
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
