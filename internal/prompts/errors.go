package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations.
var (
	ErrEmptyCorpus   = errors.New("prompt corpus is empty")
	ErrInvalidCorpus = errors.New("prompt corpus is malformed")
	ErrNoStorage     = errors.New("corpus blob key set without blob storage")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
// Every prompt failure is a server-side condition.
func MapHTTPStatus(err error) int {
	return http.StatusInternalServerError
}
