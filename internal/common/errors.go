package common

import (
	"errors"
	"fmt"
	"net/http"
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

// Failure taxonomy for one submitted archive. The first three abort the
// request; extraction/estimation failures are absorbed per document.
var (
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrInvalidArchive       = errors.New("invalid archive")
	ErrNoProcessableContent = errors.New("no processable content")
	ErrExtractionFailed     = errors.New("extraction failed")
	ErrEstimationFailed     = errors.New("estimation failed")
	ErrConfigMissing        = errors.New("configuration missing")
	ErrLedger               = errors.New("ledger error")
	ErrNotRegistered        = errors.New("company not registered")
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
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

// HTTPStatus maps the taxonomy to a response status. Bad input is 400,
// everything configuration- or server-shaped is 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedFileType),
		errors.Is(err, ErrInvalidArchive),
		errors.Is(err, ErrNoProcessableContent),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNotRegistered):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrLedger):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
