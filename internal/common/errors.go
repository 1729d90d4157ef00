package common

import "errors"

// Error codes shared across the billing packages.
const (
	CodeValidation = "VALIDATION"
	CodeNotFound   = "NOT_FOUND"
	CodeEmptyCart  = "EMPTY_CART"
)

// AppError represents an error with an attached code suitable for the
// console boundary to classify and report.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError constructs an AppError.
func NewAppError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Validation constructs a VALIDATION error.
func Validation(message string, err error) *AppError {
	return NewAppError(CodeValidation, message, err)
}

// NotFound constructs a NOT_FOUND error.
func NotFound(message string) *AppError {
	return NewAppError(CodeNotFound, message, nil)
}

// EmptyCart constructs an EMPTY_CART error.
func EmptyCart(message string) *AppError {
	return NewAppError(CodeEmptyCart, message, nil)
}

// IsAppError checks whether the error is an AppError.
func IsAppError(err error) bool {
	var target *AppError
	return errors.As(err, &target)
}

// CodeOf returns the AppError code carried by err, or "" when err is
// not an AppError.
func CodeOf(err error) string {
	var target *AppError
	if errors.As(err, &target) {
		return target.Code
	}
	return ""
}
