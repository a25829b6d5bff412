package errors

import (
	"net/http"

	"gymdesk/internal/errors"
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

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	// Member errors
	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Member not found",
		"",
	)

	ErrDuplicateIdentifier = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_IDENTIFIER",
		"A member with this identifier already exists",
		"",
	)

	ErrMemberDeleted = NewBaseError(
		http.StatusBadRequest,
		"MEMBER_DELETED",
		"Member has been deleted",
		"",
	)

	// Package errors
	ErrPackageTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"PACKAGE_NOT_FOUND",
		"Package not found",
		"",
	)

	ErrPackageTemplateInactive = NewBaseError(
		http.StatusBadRequest,
		"PACKAGE_INACTIVE",
		"Package is not available for sale",
		"",
	)

	ErrPackageInstanceNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_PACKAGE_NOT_FOUND",
		"Package not found on this member",
		"",
	)

	ErrPackageNotFreezable = NewBaseError(
		http.StatusBadRequest,
		"PACKAGE_NOT_FREEZABLE",
		"Package cannot be frozen",
		"",
	)

	ErrInvalidPackageState = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PACKAGE_STATE",
		"Operation is not allowed in the package's current state",
		"",
	)

	// Payment errors
	ErrPaymentExceedsBalance = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_EXCEEDS_BALANCE",
		"Payment exceeds the outstanding balance",
		"",
	)

	// Concurrency errors
	ErrConcurrentModification = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_MODIFICATION",
		"The member was modified by another request, please retry",
		"",
	)
	ErrJobAlreadyRunning = NewBaseError(
		http.StatusConflict,
		"JOB_ALREADY_RUNNING",
		"The job is already running on another instance",
		"",
	)

	// Authentication-related errors
	ErrEmployeeNotFound = NewBaseError(
		http.StatusNotFound,
		"EMPLOYEE_NOT_FOUND",
		"Employee not found",
		"",
	)

	ErrEmployeeAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMPLOYEE_ALREADY_EXISTS",
		"An employee with this email already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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

// Unwrap exposes the driver error for errors.Is checks
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
