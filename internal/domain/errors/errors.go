package errors

import (
	"net/http"
	"strings"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, rendered as {"error": message}
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

// Message returns the user-facing message
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

// Is matches on error code so WithDetails copies still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Request validation
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Missing required fields",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request body",
		"",
	)

	// Identity markers and credentials
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrUserMarkerRequired = NewBaseError(
		http.StatusUnauthorized,
		"USER_MARKER_REQUIRED",
		"User ID required",
		"",
	)

	ErrStaffMarkerRequired = NewBaseError(
		http.StatusUnauthorized,
		"STAFF_ID_REQUIRED",
		"Staff ID required",
		"",
	)

	ErrPrincipalRequired = NewBaseError(
		http.StatusUnauthorized,
		"PRINCIPAL_REQUIRED",
		"User or Staff ID required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrPasswordTooLong = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_LONG",
		"Password must be at most 72 bytes",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue token",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_EXISTS",
		"Email already exists",
		"",
	)

	// Staff
	ErrStaffNotFound = NewBaseError(
		http.StatusNotFound,
		"STAFF_NOT_FOUND",
		"Staff not found",
		"",
	)

	ErrStaffMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"STAFF_MEMBER_NOT_FOUND",
		"Staff member not found",
		"",
	)

	ErrSelfDelete = NewBaseError(
		http.StatusBadRequest,
		"SELF_DELETE",
		"Cannot delete your own account",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Invalid role. Must be one of [staff admin]",
		"",
	)

	// Products
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_FIELDS_REQUIRED",
		"Missing required fields (title, price)",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Price must be a valid positive number",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"Rating must be a number between 0 and 5",
		"",
	)

	ErrInvalidDiscount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISCOUNT",
		"Discount percentage must be a number between 0 and 100",
		"",
	)

	ErrInvalidOriginalPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORIGINAL_PRICE",
		"Original price must be a valid positive number",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Invalid categoryId",
		"",
	)

	ErrSearchQueryRequired = NewBaseError(
		http.StatusBadRequest,
		"SEARCH_QUERY_REQUIRED",
		"Search query is required",
		"",
	)

	// Cart
	ErrCartFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"CART_FIELDS_REQUIRED",
		"User ID and Product ID required",
		"",
	)

	ErrCartUpdateFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"CART_UPDATE_FIELDS_REQUIRED",
		"User ID and quantity required",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	// Orders
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidOrderItem = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_ITEM",
		"Each item requires productId, quantity of at least 1 and a non-negative price",
		"",
	)

	ErrStatusRequired = NewBaseError(
		http.StatusBadRequest,
		"STATUS_REQUIRED",
		"Status is required",
		"",
	)

	ErrDuplicateCheckout = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CHECKOUT",
		"Duplicate checkout request",
		"",
	)

	// Assets
	ErrInvalidImagePath = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE_PATH",
		"Invalid image path",
		"",
	)

	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"Image file not found",
		"",
	)

	// Transaction-related errors
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

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"Route not found",
		"",
	)
)

// NewInvalidStatusError lists the accepted statuses in the message.
func NewInvalidStatusError(allowed []string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Invalid status. Must be one of ["+strings.Join(allowed, " ")+"]",
		"",
	)
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
	return errors.Wrap(e.err, e.details).Error()
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

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
