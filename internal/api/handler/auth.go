package handler

import (
	"encoding/json"
	"net/http"

	"github.com/spiderxog/hub/internal/api/middleware"
	"github.com/spiderxog/hub/internal/api/request"
	"github.com/spiderxog/hub/internal/api/response"
	"github.com/spiderxog/hub/internal/services/session"
)

// AuthHandler handles registration and session endpoints
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.sessions.Register(r.Context(), req.Username, req.DisplayName, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	// Registration does not sign the caller in
	response.JSON(w, http.StatusCreated, map[string]string{
		"status": "registered",
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err := h.sessions.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(sess))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	if err := h.sessions.SignOut(r.Context(), sess); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}
