package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/villapro/villapro/internal/httpserver/deps"
	"github.com/villapro/villapro/internal/httpserver/handlers"
	"github.com/villapro/villapro/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	hosts := mw.EnforceHost(d.AllowedHosts, d.Logger)
	login := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.LoginBurst,
		RefillPerIPPerMin: d.LoginRefillPerMin,
		TrustProxy:        d.TrustProxy,
	})

	r.With(hosts, login).Post("/api/auth/login", handlers.Login(d))
	r.With(hosts).Post("/api/auth/logout", handlers.Logout(d))
	r.With(hosts).Get("/api/auth/session", handlers.Session(d))
}
