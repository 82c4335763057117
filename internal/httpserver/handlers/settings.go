package handlers

import (
	"net/http"
	"strings"

	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/httpserver/deps"
	"github.com/villapro/villapro/internal/logger"
)

type settingsResponse struct {
	URL        string `json:"url"`
	AnonKey    string `json:"anon_key"` // always redacted
	Configured bool   `json:"configured"`
}

// GetSettings returns the persisted connection configuration with the
// access key redacted, plus whether a handle currently resolves.
func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, configured := d.Controller.Settings()
		writeJSON(w, http.StatusOK, settingsResponse{
			URL:        cfg.URL,
			AnonKey:    cfg.AnonKey,
			Configured: configured,
		})
	}
}

type settingsRequest struct {
	URL     string `json:"url"`
	AnonKey string `json:"anon_key"`
}

// PutSettings persists a new connection configuration and swaps the
// backend handle. The previous session and catalog are dropped; the
// caller must sign in again against the new endpoint.
func PutSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req settingsRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "malformed request body")
			return
		}

		cfg := domain.ConnectionConfig{
			URL:     strings.TrimSpace(req.URL),
			AnonKey: strings.TrimSpace(req.AnonKey),
		}
		if err := d.Controller.SaveSettings(r.Context(), cfg); err != nil {
			writeError(w, err)
			return
		}

		d.Logger.Info("settings updated", logger.String("endpoint", cfg.URL))
		stored, configured := d.Controller.Settings()
		writeJSON(w, http.StatusOK, settingsResponse{
			URL:        stored.URL,
			AnonKey:    stored.AnonKey,
			Configured: configured,
		})
	}
}
