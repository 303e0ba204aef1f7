// Package errors defines the caller-inspectable error kinds of the user
// service. Every business failure is a distinct value so the delivery layer
// can map it to an external status without string matching.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Shared profile and lifecycle errors, raised by every account kind.
var (
	// Validation - profile (400)
	ErrInvalidName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NAME",
		"name is required and must be 50 characters or fewer",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"phone must be a valid Korean mobile number",
		"",
	)

	ErrInvalidAddress = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ADDRESS",
		"address line 1 is required when any address field is set",
		"",
	)

	// Lifecycle (422)
	ErrUserAlreadySuspended = NewBaseError(
		http.StatusUnprocessableEntity,
		"USER_ALREADY_SUSPENDED",
		"account is already suspended",
		"",
	)

	ErrUserAlreadyActive = NewBaseError(
		http.StatusUnprocessableEntity,
		"USER_ALREADY_ACTIVE",
		"account is already active",
		"",
	)

	ErrUserAlreadyWithdrawn = NewBaseError(
		http.StatusUnprocessableEntity,
		"USER_ALREADY_WITHDRAWN",
		"account is already withdrawn",
		"",
	)

	// Event delivery (503)
	ErrEventPublishFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"EVENT_PUBLISH_FAILED",
		"failed to publish status change event",
		"",
	)
)

// Administrator errors.
var (
	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"administrator not found",
		"",
	)

	ErrAdminAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_EXISTS",
		"an administrator with this email already exists",
		"",
	)

	ErrInvalidAdminRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ADMIN_ROLE",
		"unknown administrator role",
		"",
	)

	ErrInvalidDepartment = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DEPARTMENT",
		"department must be 100 characters or fewer",
		"",
	)

	ErrAdminPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"ADMIN_PERMISSION_DENIED",
		"the administrator lacks the required permission",
		"",
	)

	ErrOnlyAdminCanCreateAdmin = NewBaseError(
		http.StatusForbidden,
		"ONLY_ADMIN_CAN_CREATE_ADMIN",
		"only ADMIN can create administrators",
		"",
	)

	ErrOnlyAdminCanChangeRole = NewBaseError(
		http.StatusForbidden,
		"ONLY_ADMIN_CAN_CHANGE_ROLE",
		"only ADMIN can change roles",
		"",
	)

	ErrCannotChangeOwnRole = NewBaseError(
		http.StatusUnprocessableEntity,
		"CANNOT_CHANGE_OWN_ROLE",
		"administrators cannot change their own role",
		"",
	)

	ErrCannotDeactivateLastAdmin = NewBaseError(
		http.StatusUnprocessableEntity,
		"CANNOT_DEACTIVATE_LAST_ADMIN",
		"the last active ADMIN cannot be suspended or withdrawn",
		"",
	)
)

// Customer errors.
var (
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"customer not found",
		"",
	)

	ErrCustomerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CUSTOMER_ALREADY_EXISTS",
		"a customer with this email already exists",
		"",
	)

	ErrInvalidBirthDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BIRTH_DATE",
		"birth date must not be in the future or more than 150 years ago",
		"",
	)

	ErrInvalidCustomerGrade = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CUSTOMER_GRADE",
		"unknown customer grade",
		"",
	)

	ErrGradeDowngradeNotAllowed = NewBaseError(
		http.StatusUnprocessableEntity,
		"GRADE_DOWNGRADE_NOT_ALLOWED",
		"grade downgrade not allowed",
		"",
	)
)

// Seller errors.
var (
	ErrSellerNotFound = NewBaseError(
		http.StatusNotFound,
		"SELLER_NOT_FOUND",
		"seller not found",
		"",
	)

	ErrSellerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SELLER_ALREADY_EXISTS",
		"a seller with this email already exists",
		"",
	)

	ErrBusinessNumberAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BUSINESS_NUMBER_ALREADY_EXISTS",
		"a seller with this business registration number already exists",
		"",
	)

	ErrInvalidBusinessName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BUSINESS_NAME",
		"business name is required and must be 200 characters or fewer",
		"",
	)

	ErrInvalidBusinessNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BUSINESS_NUMBER",
		"business registration number must be 10 digits",
		"",
	)

	ErrInvalidRepresentativeName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REPRESENTATIVE_NAME",
		"representative name is required and must be 100 characters or fewer",
		"",
	)

	ErrInvalidBusinessAddress = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BUSINESS_ADDRESS",
		"business address requires address line 1",
		"",
	)

	ErrInvalidBankCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BANK_CODE",
		"bank code is not a recognized bank",
		"",
	)

	ErrInvalidAccountNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACCOUNT_NUMBER",
		"account number must be 10 to 14 digits",
		"",
	)

	ErrInvalidAccountHolder = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACCOUNT_HOLDER",
		"account holder is required and must be 100 characters or fewer",
		"",
	)

	ErrInvalidRejectionReason = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REJECTION_REASON",
		"invalid rejection reason",
		"",
	)

	ErrSellerAlreadyApproved = NewBaseError(
		http.StatusUnprocessableEntity,
		"SELLER_ALREADY_APPROVED",
		"seller is already approved",
		"",
	)

	ErrSellerAlreadyRejected = NewBaseError(
		http.StatusUnprocessableEntity,
		"SELLER_ALREADY_REJECTED",
		"seller is already rejected",
		"",
	)

	ErrSellerNotPending = NewBaseError(
		http.StatusUnprocessableEntity,
		"SELLER_NOT_PENDING",
		"seller is not pending approval",
		"",
	)

	ErrCannotUpdateSettlementBeforeApproval = NewBaseError(
		http.StatusUnprocessableEntity,
		"CANNOT_UPDATE_SETTLEMENT_BEFORE_APPROVAL",
		"cannot update settlement before approval",
		"",
	)

	ErrCannotRegisterListing = NewBaseError(
		http.StatusUnprocessableEntity,
		"CANNOT_REGISTER_LISTING",
		"cannot register listing: seller must be active and approved",
		"",
	)
)

// General errors.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
