package completions

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/juice/pkg/handlers"
	"github.com/JaimeStill/juice/pkg/routes"
)

// GenerateCommand is the request body for PRD generation.
type GenerateCommand struct {
	Idea string `json:"idea"`
}

// Idea is a generated PRD. HTML is populated only when requested.
type Idea struct {
	Idea string `json:"idea"`
	PRD  string `json:"prd"`
	HTML string `json:"prd_html,omitempty"`
}

// Handler provides HTTP endpoints for completion operations.
type Handler struct {
	sys      System
	renderer Renderer
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given system, renderer, and logger.
func NewHandler(sys System, renderer Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		sys:      sys,
		renderer: renderer,
		logger:   logger.With("handler", "completions"),
	}
}

// Routes returns the route group definition for completion endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/generate-prd",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Generate},
		},
	}
}

// Generate expands the posted idea into a PRD. With ?format=html the
// response also carries the rendered document.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var cmd GenerateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil || strings.TrimSpace(cmd.Idea) == "" {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, "No idea provided", nil)
		return
	}

	prd, err := h.sys.Generate(r.Context(), cmd.Idea)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			handlers.RespondError(w, r, h.logger, http.StatusBadRequest, "No idea provided", nil)
		case errors.Is(err, ErrUpstreamUnavailable):
			handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, "OpenAI API key not configured", nil)
		default:
			handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), "Failed to generate PRD", err)
		}
		return
	}

	result := Idea{Idea: cmd.Idea, PRD: prd}

	if r.URL.Query().Get("format") == "html" && h.renderer != nil {
		html, err := h.renderer.Render(prd)
		if err != nil {
			handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, "Failed to render PRD", err)
			return
		}
		result.HTML = html
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
