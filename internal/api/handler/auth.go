package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fantasysyndicate/league-data/internal/api/respond"
	"github.com/fantasysyndicate/league-data/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and sets the session cookie.
// @Summary Log in
// @Description Verifies a username/password pair against the credentials table and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} auth.Session
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with username and password")
		return
	}
	if req.Username == "" || req.Password == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_CREDENTIALS", "username and password are required")
		return
	}

	session, token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respond.WriteError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect username or password")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "LOGIN_FAILED", "Could not verify credentials")
		return
	}

	http.SetCookie(w, h.auth.Cookie(token))
	respond.WriteJSONObject(w, http.StatusOK, session)
}

// Logout clears the session cookie.
// @Summary Log out
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.auth.ClearCookie())
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{"status": "logged_out"})
}

// Me returns the current session.
// @Summary Current session
// @Description Returns the logged-in member's session.
// @Tags auth
// @Produce json
// @Success 200 {object} auth.Session
// @Failure 401 {object} respond.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())
	if session == nil {
		respond.WriteError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Login required")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, session)
}
