package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// AuthRequired marks a mutation attempted without an authenticated user.
func AuthRequired(message string) *AppError {
	return &AppError{
		Code:    "AUTH_REQUIRED",
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

func Validation(message string, err error) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// RemoteWrite wraps a rejected or failed write to the user store. The
// operation is not retried; local state stays at the last snapshot.
func RemoteWrite(message string, err error) *AppError {
	return &AppError{
		Code:    "REMOTE_WRITE_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func RemoteRead(message string, err error) *AppError {
	return &AppError{
		Code:    "REMOTE_READ_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// ProviderFetch wraps a failed catalog provider call. Callers degrade to an
// empty view rather than surfacing this to the user as a fatal error.
func ProviderFetch(message string, err error) *AppError {
	return &AppError{
		Code:    "PROVIDER_FETCH_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
