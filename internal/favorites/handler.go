package favorites

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/JaimeStill/juice/pkg/auth"
	"github.com/JaimeStill/juice/pkg/handlers"
	"github.com/JaimeStill/juice/pkg/routes"
)

// Handler provides HTTP endpoints for favorite operations.
// When a verified token subject is present in the request context, List and
// Add only act on that subject's favorites.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "favorites"),
	}
}

// Routes returns the route group definition for favorite endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/favorites",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.MissingUser},
			{Method: "GET", Pattern: "/{userId}", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Add},
			{Method: "DELETE", Pattern: "", Handler: h.MissingID},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Remove},
		},
	}
}

// List returns every favorite for the userId path parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.PathValue("userId"))
	if userID == "" {
		h.MissingUser(w, r)
		return
	}
	if !h.authorized(w, r, userID) {
		return
	}

	favorites, err := h.sys.List(r.Context(), userID)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), "Failed to fetch favorites", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, favorites)
}

// MissingUser rejects a list request that names no user.
func (h *Handler) MissingUser(w http.ResponseWriter, r *http.Request) {
	handlers.RespondError(w, r, h.logger, http.StatusBadRequest, "User ID is required", nil)
}

// Add saves the posted prompt for the posted user.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var cmd AddCommand
	err := json.NewDecoder(r.Body).Decode(&cmd)
	userID := strings.TrimSpace(cmd.UserID)
	if err != nil || userID == "" || strings.TrimSpace(cmd.Prompt) == "" {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, "User ID and prompt are required", nil)
		return
	}
	if !h.authorized(w, r, userID) {
		return
	}

	favorite, err := h.sys.Add(r.Context(), userID, cmd.Prompt)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), "Failed to add favorite", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, favorite)
}

// Remove deletes the favorite named by the id path parameter.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.PathValue("id"))
	if raw == "" {
		h.MissingID(w, r)
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, "Favorite ID must be a positive integer", nil)
		return
	}

	if err := h.sys.Remove(r.Context(), id); err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), "Failed to remove favorite", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// MissingID rejects a delete request that names no favorite.
func (h *Handler) MissingID(w http.ResponseWriter, r *http.Request) {
	handlers.RespondError(w, r, h.logger, http.StatusBadRequest, "Favorite ID is required", nil)
}

func (h *Handler) authorized(w http.ResponseWriter, r *http.Request, userID string) bool {
	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok || subject == userID {
		return true
	}

	h.logger.Warn("subject mismatch", "error", ErrForbidden, "user_id", userID)
	handlers.RespondError(w, r, h.logger, http.StatusForbidden, "Forbidden", nil)
	return false
}
