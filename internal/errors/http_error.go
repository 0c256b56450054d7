package errors

import (
	"errors"
	"net/http"

	"vincanto/internal/availability"
	"vincanto/internal/pricing"
	"vincanto/internal/repository"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
)

// ErrDatesUnavailable is returned when the requested stay conflicts with an
// existing booking or an administrative block.
var ErrDatesUnavailable = errors.New("selected dates are not available")

// FromError maps service and repository errors to an HTTPError.
func FromError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, pricing.ErrInvalidRange),
		errors.Is(err, availability.ErrInvalidRange),
		errors.Is(err, pricing.ErrInvalidGuestCount),
		errors.Is(err, pricing.ErrMinimumStay):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatesUnavailable):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, pricing.ErrMissingConfig):
		return NewHTTPError(http.StatusInternalServerError, "pricing is not configured")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
