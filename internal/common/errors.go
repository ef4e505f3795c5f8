package common

import (
	"errors"
	"fmt"
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
	ErrInternal     = errors.New("internal error")
)

// Extraction failure taxonomy. Rasterization failures are terminal for a
// document; provider errors decide whether the selector may fall back.
var (
	ErrRasterization       = errors.New("rasterization failed")
	ErrProviderDisabled    = errors.New("provider disabled")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderAuth        = errors.New("provider authentication failed")
	ErrRateLimited         = errors.New("provider rate limited")
	ErrProviderTimeout     = errors.New("provider call timed out")
)

// NewAppError builds an AppError with a stable code.
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
