package transport

import (
	"errors"
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and profile endpoints.
type AuthHandler struct {
	users     service.UserService
	logger    *zap.Logger
	expiresIn int64
}

// NewAuthHandler creates a new auth handler. expiresIn is the token
// lifetime in seconds, echoed back to clients on login and register.
func NewAuthHandler(users service.UserService, expiresIn int64, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger, expiresIn: expiresIn}
}

// RegisterPublicRoutes mounts routes that need no token.
func (h *AuthHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// RegisterProtectedRoutes mounts routes behind the auth middleware.
func (h *AuthHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/profile", h.Profile)
	r.Put("/profile", h.UpdateProfile)
	r.Post("/logout", h.Logout)
}

// RegisterAdminRoutes mounts admin-only routes.
func (h *AuthHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/users", h.ListUsers)
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=32"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"first_name" validate:"max=64"`
	LastName  string `json:"last_name" validate:"max=64"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the profile update payload
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"max=64"`
	LastName  string `json:"last_name" validate:"max=64"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if ve := middleware.FormatValidationErrors(err); len(ve) > 0 {
			middleware.RespondWithValidationErrors(w, ve)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			middleware.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		h.logger.Error("Registration failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "registration successful",
		Data: map[string]interface{}{
			"user":       user,
			"token":      token,
			"expires_in": h.expiresIn,
		},
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if ve := middleware.FormatValidationErrors(err); len(ve) > 0 {
			middleware.RespondWithValidationErrors(w, ve)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.users.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "login successful",
		Data: map[string]interface{}{
			"user":       user,
			"token":      token,
			"expires_in": h.expiresIn,
		},
	})
}

// Profile handles GET /auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    map[string]interface{}{"user": user},
	})
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if ve := middleware.FormatValidationErrors(err); len(ve) > 0 {
			middleware.RespondWithValidationErrors(w, ve)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), userID, req.FirstName, req.LastName, req.AvatarURL)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "profile updated",
		Data:    map[string]interface{}{"user": user},
	})
}

// Logout handles POST /auth/logout. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists for API symmetry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "logged out",
	})
}

// ListUsers handles GET /auth/users (admin only)
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.users.ListUsers(r.Context())
	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data: map[string]interface{}{
			"users": users,
			"count": len(users),
		},
	})
}
