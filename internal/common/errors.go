package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConstraint   = errors.New("constraint violation")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// HTTP error helpers
func BadRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}

func NotFoundError(message string) error {
	return echo.NewHTTPError(http.StatusNotFound, message)
}

func ConflictError(message string) error {
	return echo.NewHTTPError(http.StatusConflict, message)
}

func InternalError(message string) error {
	return echo.NewHTTPError(http.StatusInternalServerError, message)
}

func BadRequestErrorf(format string, args ...interface{}) error {
	return BadRequestError(fmt.Sprintf(format, args...))
}
