package prompts

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/juice/pkg/handlers"
	"github.com/JaimeStill/juice/pkg/routes"
)

// Handler provides HTTP endpoints for prompt operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "prompts"),
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/random-prompt",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Random},
		},
	}
}

// Random returns one prompt with its index and the corpus size.
func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	pick, err := h.sys.Random()
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), "Failed to generate random prompt", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pick)
}
