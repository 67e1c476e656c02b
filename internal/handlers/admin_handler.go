package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
)

// AdminService is the interface that wraps methods for the approval workflow.
type AdminService interface {
	// Method ListPending retrieves all users waiting for administrator approval.
	ListPending(ctx context.Context) ([]models.PendingUser, error)
	// Method Approve marks a user as approved and returns its username.
	//
	// "userID" parameter identifies the user to approve.
	//
	// If user with such ID does not exist, models.ErrUserNotFound will be returned.
	Approve(ctx context.Context, userID int) (string, error)
}

// AdminHandler handles administrator HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: BaseHandler{Logger: logger},
		adminService: adminService,
	}
}

// RegisterRoutes registers all admin handler routes.
// The caller is expected to mount these behind the auth and admin middleware.
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/pending", h.ListPending)
	r.Post("/approve/{userID}", h.Approve)
}

// ListPending handles GET /admin/pending
// @Summary List users pending approval
// @Description List all registered accounts waiting for administrator approval.
// @Tags admin
// @Produce json
// @Success 200 {array} models.PendingUser "Pending users"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin access required"
// @Security ApiKeyAuth
// @Router /admin/pending [get]
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.adminService.ListPending(r.Context())
	if err != nil {
		h.Logger.Error("failed to list pending users", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list pending users")
		return
	}

	h.RespondJSON(w, http.StatusOK, pending)
}

// Approve handles POST /admin/approve/{userID}
// @Summary Approve a user
// @Description Approve a registered account so it can log in. Approving an already approved account succeeds.
// @Tags admin
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} map[string]string "User approved"
// @Failure 400 {object} map[string]string "Invalid user id"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "User not found"
// @Security ApiKeyAuth
// @Router /admin/approve/{userID} [post]
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	username, err := h.adminService.Approve(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			h.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.Error("failed to approve user", zap.Int("userID", userID), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to approve user")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("User %s approved", username),
	})
}
