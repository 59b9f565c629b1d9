package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrIDMismatch is returned when an update body carries an id that
	// disagrees with the path id.
	ErrIDMismatch = errors.New("Id inconsistente")
	// ErrNegativeDailyRate is returned when a motorcycle is written with a
	// negative daily rate.
	ErrNegativeDailyRate = errors.New("valorDiaria não pode ser negativo")
)

// NotFoundError reports a referenced entity id that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d não encontrado.", e.Entity, e.ID)
}

// NewNotFound creates a NotFoundError for an entity id.
func NewNotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var nf *NotFoundError
	switch {
	case errors.As(err, &nf):
		return NewHTTPError(http.StatusNotFound, nf.Error(), "NOT_FOUND")
	case errors.Is(err, ErrIDMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ID_MISMATCH")
	case errors.Is(err, ErrNegativeDailyRate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
