package favorites

import (
	"errors"
	"net/http"
)

// Domain errors for favorite operations.
var (
	ErrInvalidInput = errors.New("invalid favorite input")
	ErrStorage      = errors.New("favorites storage failure")
	ErrForbidden    = errors.New("user does not match token subject")
)

// MapHTTPStatus maps favorite domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
