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

// WithMessage returns a copy that reports a different user-facing message.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Request validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Uploaded file is not a supported image",
		"",
	)

	// Recognition outcome errors
	ErrNoFaceDetected = NewBaseError(
		http.StatusBadRequest,
		"NO_FACE_DETECTED",
		"No face detected in the image",
		"",
	)

	ErrNoMatchFound = NewBaseError(
		http.StatusBadRequest,
		"NO_MATCH_FOUND",
		"No matching face found",
		"",
	)

	// Session token errors
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Could not validate credentials",
		"",
	)

	ErrExpiredToken = NewBaseError(
		http.StatusUnauthorized,
		"EXPIRED_TOKEN",
		"Token has expired",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue session token",
		"",
	)

	ErrPasswordLoginUnsupported = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_LOGIN_UNSUPPORTED",
		"This server uses facial recognition for authentication. Please use /verify/ endpoint.",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You can only delete your own user data",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An unexpected error occurred",
		"",
	)
)

// ProviderError reports a failed call to the recognition provider, implementing the AppError interface
type ProviderError struct {
	op  string
	err error
}

// NewProviderError wraps a transport, auth or quota failure from the provider.
func NewProviderError(op string, err error) AppError {
	return &ProviderError{
		op:  op,
		err: err,
	}
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return errors.Wrapf(e.err, "recognition provider %s failed", e.op).Error()
}

// Unwrap exposes the provider cause.
func (e *ProviderError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ProviderError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *ProviderError) ErrorCode() string {
	return "PROVIDER_ERROR"
}

// Message returns the user-friendly error message
func (e *ProviderError) Message() string {
	return "Face recognition provider is unavailable"
}

// Details returns detailed error information
func (e *ProviderError) Details() string {
	return e.op
}

// IsProviderError reports whether err came from the recognition provider.
func IsProviderError(err error) bool {
	var providerErr *ProviderError

	return errors.As(err, &providerErr)
}
