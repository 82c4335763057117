package handlers

import (
	"net/http"
	"strings"

	"github.com/villapro/villapro/internal/httpserver/deps"
	"github.com/villapro/villapro/internal/logger"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	View          string `json:"view"`
}

// Login authenticates against the configured backend and, on success,
// returns the new session state. Credentials are never logged.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "malformed request body")
			return
		}
		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			badRequest(w, "email and password are required")
			return
		}

		if err := d.Controller.SignIn(r.Context(), req.Email, req.Password); err != nil {
			d.Logger.Info("login rejected", logger.String("email", req.Email))
			writeError(w, err)
			return
		}

		d.Logger.Info("login succeeded", logger.String("email", req.Email))
		writeJSON(w, http.StatusOK, currentSession(d))
	}
}

// Logout ends the session. Always succeeds from the caller's view.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Controller.SignOut(r.Context())
		writeJSON(w, http.StatusOK, currentSession(d))
	}
}

// Session reports the current authentication state.
func Session(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, currentSession(d))
	}
}

func currentSession(d deps.Deps) sessionResponse {
	resp := sessionResponse{View: string(d.Controller.ActiveView())}
	if s := d.Controller.Session(); s != nil {
		resp.Authenticated = true
		resp.Email = s.Email
		resp.UserID = s.UserID
	}
	return resp
}
