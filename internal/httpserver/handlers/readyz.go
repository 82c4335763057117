package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/villapro/villapro/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports readiness: the process serves once local storage
// answers. The remote backend being unconfigured is a user-recoverable
// state, not an unready one.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := false
		if d.RedisClient != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			ready = d.RedisClient.Ping(ctx).Err() == nil
			cancel()
		}

		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, readyzResponse{Ready: ready})
	}
}
