package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed   = errors.New("validation failed")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrBadRequest         = errors.New("bad request")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound         = errors.New("student not found")
	ErrRollNumberAlreadyExists = errors.New("roll number already exists")
)

// Teacher / admin errors
var (
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrAdminNotFound   = errors.New("admin not found")
)

// Certificate errors
var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrCertificateReviewed = errors.New("certificate has already been reviewed")
	ErrInvalidReviewStatus = errors.New("status must be 'approved' or 'rejected'")
)

// Marks errors
var (
	ErrMarksAlreadyExist      = errors.New("marks for this semester and year already exist")
	ErrSemesterRecordNotFound = errors.New("semester record not found")
)

// College / group / message errors
var (
	ErrCollegeNotFound      = errors.New("college not found")
	ErrCollegeAlreadyExists = errors.New("college with this name already exists")
	ErrGroupNotFound        = errors.New("group not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrRecipientNotFound    = errors.New("recipient not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a CustomError wrapping ErrResourceNotFound
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a CustomError wrapping ErrConflict
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a CustomError wrapping ErrBadRequest
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
