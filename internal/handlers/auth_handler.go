package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register performs user creation waiting for administrator approval.
	//
	// "req" parameter contains username and password.
	//
	// If such username is already taken, models.ErrUsernameTaken will be returned.
	Register(ctx context.Context, req *models.RegisterRequest) error
	// Method Login performs a user credentials validation and returns an access token and the admin flag.
	//
	// "username" and "password" parameters are the submitted credentials.
	//
	// If credentials are wrong, models.ErrInvalidCredentials will be returned.
	// If credentials are correct but the account is unapproved, models.ErrPendingApproval will be returned.
	Login(ctx context.Context, username, password string) (string, bool, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/token", h.Login)
}

// Register handles POST /register
// @Summary Register a new user
// @Description Register a new user account. The account stays unusable until an administrator approves it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} map[string]string "Registration successful"
// @Failure 400 {object} map[string]string "Invalid request body or username already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		h.RespondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if err := h.authService.Register(r.Context(), &req); err != nil {
		if errors.Is(err, models.ErrUsernameTaken) {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to register user", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "Registration successful. Wait for administrator approval.",
	})
}

// Login handles POST /token
// @Summary Login user
// @Description Authenticate with username and password (form-encoded, OAuth2 password flow style). Returns a bearer access token.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} models.LoginResponse "Access token"
// @Failure 400 {object} map[string]string "Incorrect username or password"
// @Failure 403 {object} map[string]string "Account pending approval"
// @Router /token [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.RespondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, isAdmin, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials):
			h.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrPendingApproval):
			h.RespondError(w, http.StatusForbidden, "Account pending approval. Contact administrator.")
		default:
			h.Logger.Error("failed to login user", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to login")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		IsAdmin:     isAdmin,
	})
}
