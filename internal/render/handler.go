package render

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/juice/pkg/handlers"
	"github.com/JaimeStill/juice/pkg/routes"
)

// RenderCommand is the request body for markdown rendering.
type RenderCommand struct {
	Markdown string `json:"markdown"`
}

// Rendered is the response body for markdown rendering.
type Rendered struct {
	HTML string `json:"html"`
}

// Handler provides HTTP endpoints for markdown rendering.
type Handler struct {
	renderer *Renderer
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given renderer and logger.
func NewHandler(renderer *Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger.With("handler", "render"),
	}
}

// Routes returns the route group definition for render endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/render",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Render},
		},
	}
}

// Render converts the posted markdown to HTML.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	var cmd RenderCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil || strings.TrimSpace(cmd.Markdown) == "" {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, "No markdown provided", nil)
		return
	}

	html, err := h.renderer.Render(cmd.Markdown)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, "Failed to render markdown", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Rendered{HTML: html})
}
