package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/villapro/villapro/internal/httpserver/deps"
)

type componentStatus struct {
	OK           bool   `json:"ok"`
	VillasLoaded *int   `json:"villas_loaded,omitempty"`
	LastReload   string `json:"last_reload,omitempty"`
	Endpoint     string `json:"endpoint,omitempty"`
	Mode         string `json:"mode,omitempty"`
	Impact       string `json:"impact,omitempty"`
	Error        string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports per-component health for operators: the remote backend
// handle, local storage, the catalog and the description generator.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.Controller.CatalogCount()
		lastReload := "never"
		if t := d.Controller.LastReload(); !t.IsZero() {
			lastReload = t.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"backend": {
				OK:       d.Controller.Configured(),
				Endpoint: d.Controller.Endpoint(),
			},
			"catalog": {
				OK:           true,
				VillasLoaded: &count,
				LastReload:   lastReload,
			},
			"local_storage": checkLocalStorage(d),
			"describer": {
				OK:   true,
				Mode: describerMode(d),
			},
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	if backend, exists := components["backend"]; exists && !backend.OK {
		return "unconfigured"
	}
	if local, exists := components["local_storage"]; exists && !local.OK {
		return "degraded"
	}
	return "operational"
}

func describerMode(d deps.Deps) string {
	if d.Controller.DescriberEnabled() {
		return "generative"
	}
	return "fallback-only"
}

func checkLocalStorage(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "settings-and-session-volatile",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "settings-and-session-volatile",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "none",
		Error:  "none",
	}
}
