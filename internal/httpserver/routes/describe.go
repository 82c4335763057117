package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/villapro/villapro/internal/httpserver/deps"
	"github.com/villapro/villapro/internal/httpserver/handlers"
	"github.com/villapro/villapro/internal/httpserver/mw"
)

func init() { Register(registerDescribe) }

func registerDescribe(r chi.Router, d deps.Deps) {
	r.With(
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RequireSession(d.Controller),
	).Post("/api/describe", handlers.Describe(d))
}
