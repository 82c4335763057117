package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/villapro/villapro/internal/httpserver/deps"
	"github.com/villapro/villapro/internal/httpserver/handlers"
	"github.com/villapro/villapro/internal/httpserver/mw"
)

func init() { Register(registerVillas) }

func registerVillas(r chi.Router, d deps.Deps) {
	guarded := r.With(
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RequireSession(d.Controller),
	)

	guarded.Get("/api/villas", handlers.ListVillas(d))
	guarded.Post("/api/villas", handlers.CreateVilla(d))
	guarded.Post("/api/villas/refresh", handlers.RefreshVillas(d))
	guarded.Get("/api/villas/{id}", handlers.GetVilla(d))
	guarded.Patch("/api/villas/{id}", handlers.UpdateVilla(d))
	guarded.Delete("/api/villas/{id}", handlers.DeleteVilla(d))
}
