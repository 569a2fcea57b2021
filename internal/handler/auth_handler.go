package handler

import (
	"errors"
	"net/http"

	"github.com/hector17rock/SeatServe/internal/service"
	"github.com/hector17rock/SeatServe/pkg/logger"
)

// AuthHandler exposes the demo sign-in collaborator over HTTP.
type AuthHandler struct {
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler with the given service and logger
func NewAuthHandler(authService service.AuthServiceInterface, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      log.WithComponent("auth_handler"),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User string `json:"user"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid login request body", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingCredentials) {
			writeErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Login failed", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSONResponse(w, http.StatusOK, loginResponse{User: user})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context()); err != nil {
		h.logger.Error("Logout failed", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	writeJSONResponse(w, http.StatusNoContent, nil)
}

// Session handles GET /api/v1/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	loggedIn, err := h.authService.LoggedIn(r.Context())
	if err != nil {
		h.logger.Error("Failed to read session state", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to read session")
		return
	}

	user := ""
	if loggedIn {
		if user, err = h.authService.Identity(r.Context()); err != nil {
			h.logger.Error("Failed to read identity", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to read session")
			return
		}
	}

	writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"logged_in": loggedIn,
		"user":      user,
	})
}
