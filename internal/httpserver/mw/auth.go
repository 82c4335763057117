package mw

import (
	"encoding/json"
	"net/http"

	"github.com/villapro/villapro/internal/control"
)

// RequireSession gates catalog surfaces behind the authenticated
// session. The login and settings surfaces stay open so a fresh or
// misconfigured deployment can still be brought up.
func RequireSession(ctrl *control.Controller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ctrl.Session() == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "authentication required",
					"code":  "auth_required",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
