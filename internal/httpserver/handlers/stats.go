package handlers

import (
	"net/http"

	"github.com/villapro/villapro/internal/httpserver/deps"
)

// Stats serves the dashboard aggregates, recomputed synchronously from
// the in-memory catalog.
func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Controller.Stats())
	}
}
