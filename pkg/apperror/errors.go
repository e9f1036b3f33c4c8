package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to callers. The LIM_* family covers the limit workflow.
const (
	CodeDuplicateCountry = "LIM_001"
	CodeCountryNotFound  = "LIM_002"
	CodeAlreadyPending   = "LIM_003"
	CodeNoPendingRequest = "LIM_004"
	CodeInvalidField     = "LIM_005"

	CodeInvalidToken = "AUTH_001"
	CodeForbidden    = "AUTH_002"

	CodeInternal    = "SYS_001"
	CodePersistence = "SYS_002"
	CodeStoreClosed = "SYS_003"
	CodeRateLimited = "SYS_004"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err (or anything it wraps) is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// CodeOf returns the AppError code carried by err, or "" when err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Limit workflow (LIM) ----

func ErrDuplicateCountry(code string) *AppError {
	return New(CodeDuplicateCountry, fmt.Sprintf("Country %s already exists", code), http.StatusConflict)
}

func ErrCountryNotFound(code string) *AppError {
	return New(CodeCountryNotFound, fmt.Sprintf("Country %s not found", code), http.StatusNotFound)
}

// ErrAlreadyPending is only raised under the strict edit policy.
func ErrAlreadyPending(code string) *AppError {
	return New(CodeAlreadyPending, fmt.Sprintf("Country %s already has a pending request", code), http.StatusConflict)
}

func ErrNoPendingRequest(code string) *AppError {
	return New(CodeNoPendingRequest, fmt.Sprintf("Country %s has no pending request", code), http.StatusConflict)
}

func ErrInvalidField(field, reason string) *AppError {
	return New(CodeInvalidField, fmt.Sprintf("Invalid %s: %s", field, reason), http.StatusBadRequest)
}

// ---- Authentication & authorization (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrPersistence(err error) *AppError {
	return Wrap(CodePersistence, "Failed to persist country record", http.StatusInternalServerError, err)
}

func ErrStoreClosed() *AppError {
	return New(CodeStoreClosed, "Registry store is closed", http.StatusServiceUnavailable)
}

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a LIM_005 validation error for malformed request bodies.
func Validation(message string) *AppError {
	return New(CodeInvalidField, message, http.StatusBadRequest)
}
