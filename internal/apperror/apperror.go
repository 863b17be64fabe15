package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors the HTTP layer maps to status codes.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// AppError carries a caller-facing message on top of a sentinel.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

func ValidationFailed(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

func NotFound(resource, id string) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found with id %s", resource, id)}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: message}
}

// StoreUnavailable wraps a failed load or save against the remote document
// store. Transient and permanent outages surface identically.
func StoreUnavailable(op string, cause error) *AppError {
	err := ErrStoreUnavailable
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrStoreUnavailable, cause)
	}
	return &AppError{
		Err:     err,
		Message: fmt.Sprintf("document store %s failed", op),
		Field:   op,
	}
}
