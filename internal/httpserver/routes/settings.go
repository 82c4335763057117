package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/villapro/villapro/internal/httpserver/deps"
	"github.com/villapro/villapro/internal/httpserver/handlers"
	"github.com/villapro/villapro/internal/httpserver/mw"
)

func init() { Register(registerSettings) }

// Settings stay reachable without a session: a fresh deployment must
// be configurable before anyone can sign in.
func registerSettings(r chi.Router, d deps.Deps) {
	hosts := mw.EnforceHost(d.AllowedHosts, d.Logger)

	r.With(hosts).Get("/api/settings", handlers.GetSettings(d))
	r.With(hosts).Put("/api/settings", handlers.PutSettings(d))
}
