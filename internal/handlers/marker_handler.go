package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kortex/backend/internal/auth/middleware"
	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
)

// MarkerService is the interface that wraps methods for marker business logic.
type MarkerService interface {
	// Method List retrieves all markers with creator usernames resolved at read time.
	List(ctx context.Context) ([]models.MarkerView, error)
	// Method Create stores a new marker bound to the authenticated creator.
	//
	// "creatorID" parameter is the id of the authenticated user.
	// "req" parameter carries the marker fields, stored verbatim.
	Create(ctx context.Context, creatorID int, req *models.CreateMarkerRequest) error
}

// MarkerHandler handles marker HTTP requests
type MarkerHandler struct {
	BaseHandler
	markerService MarkerService
}

// NewMarkerHandler creates a new marker handler
func NewMarkerHandler(markerService MarkerService, logger *zap.Logger) *MarkerHandler {
	return &MarkerHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		markerService: markerService,
	}
}

// RegisterRoutes registers all marker handler routes.
// The caller is expected to mount these behind the auth middleware.
func (h *MarkerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/markers", h.List)
	r.Post("/markers", h.Create)
}

// List handles GET /markers
// @Summary List markers
// @Description List all markers on the shared map, each annotated with its creator's username.
// @Tags markers
// @Produce json
// @Success 200 {array} models.MarkerView "Markers"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security ApiKeyAuth
// @Router /markers [get]
func (h *MarkerHandler) List(w http.ResponseWriter, r *http.Request) {
	markers, err := h.markerService.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list markers", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list markers")
		return
	}

	h.RespondJSON(w, http.StatusOK, markers)
}

// Create handles POST /markers
// @Summary Create a marker
// @Description Create a marker at the given position. The marker is bound to the authenticated user.
// @Tags markers
// @Accept json
// @Produce json
// @Param request body models.CreateMarkerRequest true "Marker"
// @Success 201 {object} map[string]string "Marker added"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security ApiKeyAuth
// @Router /markers [post]
func (h *MarkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateMarkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.markerService.Create(r.Context(), user.ID, &req); err != nil {
		h.Logger.Error("failed to create marker", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to create marker")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]string{"message": "Marker added"})
}
