package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors derived
// through WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// WithDetailsf adds formatted detailed error information
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrBrandNotFound = NewBaseError(
		http.StatusNotFound,
		"BRAND_NOT_FOUND",
		"Brand not found",
		"",
	)

	ErrBrandAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BRAND_ALREADY_EXISTS",
		"A brand with this name already exists",
		"",
	)

	// Authorization errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to continue",
		"",
	)

	ErrOwnership = NewBaseError(
		http.StatusForbidden,
		"OWNERSHIP_VIOLATION",
		"You are not allowed to manage this product",
		"",
	)

	ErrMissingBrandAssignment = NewBaseError(
		http.StatusForbidden,
		"MISSING_BRAND_ASSIGNMENT",
		"Seller account has no brand assigned",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This username is already taken",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_ALLOWED",
		"This role cannot be chosen at sign up",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"Image exceeds the upload limit",
		"",
	)

	ErrImageStorageDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"IMAGE_STORAGE_DISABLED",
		"Image uploads are not configured",
		"",
	)

	// Transaction errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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

// NewValidationError returns a ValidationFailed error carrying the offending detail.
func NewValidationError(format string, args ...any) *BaseError {
	return ErrValidationFailed.WithDetailsf(format, args...)
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// PartialReconciliationError is returned when some variant rows of a product
// update failed. Rows that succeeded are kept; Report lists every outcome.
type PartialReconciliationError struct {
	Report *entity.ReconciliationReport
}

// NewPartialReconciliationError wraps a report that contains failed rows.
func NewPartialReconciliationError(report *entity.ReconciliationReport) *PartialReconciliationError {
	return &PartialReconciliationError{Report: report}
}

// Error implements the error interface
func (e *PartialReconciliationError) Error() string {
	return fmt.Sprintf("product %d: %d variant row(s) failed", e.Report.ProductID, len(e.Report.Failed()))
}

// HTTPCode returns the HTTP status code
func (e *PartialReconciliationError) HTTPCode() int {
	return http.StatusMultiStatus
}

// ErrorCode returns the business error code
func (e *PartialReconciliationError) ErrorCode() string {
	return "PARTIAL_RECONCILIATION_FAILURE"
}

// Message returns the user-friendly error message
func (e *PartialReconciliationError) Message() string {
	return "Product was updated but some variant changes failed"
}

// Details returns detailed error information
func (e *PartialReconciliationError) Details() string {
	return e.Error()
}
