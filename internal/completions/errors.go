package completions

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for completion operations.
var (
	ErrInvalidInput        = errors.New("idea must not be empty")
	ErrUpstreamUnavailable = errors.New("completion API key not configured")
	ErrUpstream            = errors.New("completion request failed")
)

// UpstreamError describes a failed call to the completion API. Status is
// the upstream HTTP status when one was received.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("completion API returned %d: %s", e.Status, e.Message)
	}
	return e.Message
}

// Unwrap exposes both ErrUpstream and the underlying cause.
func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}

// MapHTTPStatus maps completion domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
