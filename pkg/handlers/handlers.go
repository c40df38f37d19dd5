// Package handlers provides JSON response helpers shared by every HTTP handler.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/juice/pkg/middleware"
)

// UnknownError is the message reported when a failure carries no text.
const UnknownError = "Unknown error"

// ErrorResponse is the uniform failure body: a short, stable summary and an
// optional human-readable message describing the underlying cause.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RespondJSON writes data as a JSON body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the failure against r and writes an ErrorResponse.
// A nil err produces a body with only the summary, used for request validation.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, summary string, err error) {
	resp := ErrorResponse{Error: summary}

	if err != nil {
		resp.Message = Message(err)
	}

	logger = logger.With("method", r.Method, "uri", r.URL.RequestURI())
	if id := middleware.RequestIDFrom(r.Context()); id != "" {
		logger = logger.With("request_id", id)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", summary, "message", resp.Message)
	} else {
		logger.Warn("request rejected", "status", status, "error", summary, "message", resp.Message)
	}

	RespondJSON(w, status, resp)
}

// Message returns err's text, or UnknownError when it has none.
func Message(err error) string {
	if err == nil || err.Error() == "" {
		return UnknownError
	}
	return err.Error()
}
