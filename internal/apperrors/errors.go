package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a non-positive (or otherwise unusable) monetary input.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidTransition indicates an illegal status change.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvalidState indicates an operation attempted on a record of the wrong type or status.
var ErrInvalidState = errors.New("invalid record state")

// ErrOverPayment indicates a payment larger than the outstanding loan balance.
var ErrOverPayment = errors.New("payment exceeds outstanding balance")

// ErrStoreUnavailable indicates an I/O failure in the underlying record store.
var ErrStoreUnavailable = errors.New("record store unavailable")

// ErrConflict indicates the record changed between read and write (lost compare-and-set).
var ErrConflict = errors.New("resource was modified concurrently")

// ErrForbidden indicates the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// AppError carries a status code and message alongside the underlying cause.
// Codes >= 500 are store/infrastructure failures and match ErrStoreUnavailable.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewStoreError wraps a store I/O failure.
func NewStoreError(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, err)
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStoreUnavailable) succeed for infrastructure failures.
func (e *AppError) Is(target error) bool {
	return target == ErrStoreUnavailable && e.Code >= http.StatusInternalServerError
}
