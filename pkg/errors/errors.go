package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrCalculationNotFound = errors.New("calculation not found")
	ErrUnsupportedStrategy = errors.New("unsupported search strategy")
	ErrUnsupportedDriver   = errors.New("unsupported database driver")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeCalculationNotFound = "CALCULATION_NOT_FOUND"
	ErrCodeDatabaseError       = "DATABASE_ERROR"
	ErrCodeCacheError          = "CACHE_ERROR"
)

// WrapValidationError reports an input field that failed validation.
func WrapValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("%s %s", field, reason),
		Field:   field,
		Err:     ErrInvalidInput,
	}
}

func WrapCalculationNotFound(calculationID string) *BusinessError {
	return NewBusinessError(
		ErrCodeCalculationNotFound,
		fmt.Sprintf("Calculation with ID %s not found", calculationID),
		ErrCalculationNotFound,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}

// CodeOf returns the business error code carried by err, or "" when err is
// not a BusinessError.
func CodeOf(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
