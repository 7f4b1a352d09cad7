package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigInvalid      ErrorCode = "CONFIG_INVALID"
	ErrCodeInvalidChunkConfig ErrorCode = "INVALID_CHUNK_CONFIG"

	// Extraction errors
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrCodeCorruptInput      ErrorCode = "CORRUPT_INPUT"
	ErrCodeIOFailure         ErrorCode = "IO_FAILURE"

	// Generation capability errors
	ErrCodeGenerationUnavailable ErrorCode = "GENERATION_UNAVAILABLE"
	ErrCodeGenerationTimeout     ErrorCode = "GENERATION_TIMEOUT"

	// Database errors
	ErrCodeDatabaseQuery     ErrorCode = "DATABASE_QUERY"
	ErrCodeDatabaseMigration ErrorCode = "DATABASE_MIGRATION"

	// Resource errors
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeAccessDenied ErrorCode = "ACCESS_DENIED"

	// Validation errors
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// getDefaultHTTPCode returns the default HTTP status code for an error code
func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeAccessDenied:
		return http.StatusForbidden
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeInvalidChunkConfig, ErrCodeUnsupportedFormat:
		return http.StatusBadRequest
	case ErrCodeCorruptInput:
		return http.StatusUnprocessableEntity
	case ErrCodeGenerationTimeout:
		return http.StatusRequestTimeout
	case ErrCodeGenerationUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// NotFound creates a not found error
func NotFound(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

// UnsupportedFormat creates an error for a MIME type with no registered decoder
func UnsupportedFormat(mimeType string) *AppError {
	return New(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported document format: %s", mimeType)).
		WithDetail("mime_type", mimeType)
}

// CorruptInput creates an error for a file its decoder rejected
func CorruptInput(filename string, cause error) *AppError {
	return Wrap(cause, ErrCodeCorruptInput, fmt.Sprintf("could not decode %s", filename)).
		WithDetail("filename", filename)
}

// IOFailure creates an error for an unreadable stored file
func IOFailure(path string, cause error) *AppError {
	return Wrap(cause, ErrCodeIOFailure, "stored file could not be read").
		WithDetail("path", path)
}

// InvalidChunkConfig creates an error for a chunker misconfiguration
func InvalidChunkConfig(size, overlap int) *AppError {
	return Newf(ErrCodeInvalidChunkConfig, "chunk overlap %d must be smaller than chunk size %d", overlap, size).
		WithDetail("size", size).
		WithDetail("overlap", overlap)
}

// GenerationUnavailable creates an error for an unreachable AI capability
func GenerationUnavailable(service string, cause error) *AppError {
	return Wrap(cause, ErrCodeGenerationUnavailable, fmt.Sprintf("%s service unavailable", service)).
		WithDetail("service", service)
}

// GenerationTimeout creates an error for an AI capability that timed out
func GenerationTimeout(service string, cause error) *AppError {
	return Wrap(cause, ErrCodeGenerationTimeout, fmt.Sprintf("%s request timed out", service)).
		WithDetail("service", service)
}

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// DatabaseError creates a database error
func DatabaseError(operation string, cause error) *AppError {
	return Wrap(cause, ErrCodeDatabaseQuery, fmt.Sprintf("database %s failed", operation)).
		WithDetail("operation", operation)
}

// Is checks if an error carries a specific code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
