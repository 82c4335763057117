package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/httpserver/deps"
	"github.com/villapro/villapro/internal/logger"
)

type villaListResponse struct {
	Villas []domain.Villa `json:"villas"`
	Total  int            `json:"total"`
}

// ListVillas serves the search/filtered catalog from local state.
// q is a case-insensitive substring on name or location; status is an
// exact match or "All".
func ListVillas(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		status := strings.TrimSpace(r.URL.Query().Get("status"))

		villas := d.Controller.Villas(query, status)
		writeJSON(w, http.StatusOK, villaListResponse{
			Villas: villas,
			Total:  d.Controller.CatalogCount(),
		})
	}
}

// GetVilla serves a single villa from local state.
func GetVilla(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		v, ok := d.Controller.Villa(id)
		if !ok {
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// CreateVilla inserts a villa remotely and returns the stored row with
// its server-assigned id and timestamp.
func CreateVilla(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.VillaInput
		if err := decode(r, &in); err != nil {
			badRequest(w, "malformed request body")
			return
		}

		v, err := d.Controller.Add(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		d.Logger.Info("villa created",
			logger.String("id", v.ID),
			logger.String("name", v.Name))
		writeJSON(w, http.StatusCreated, v)
	}
}

// UpdateVilla applies a partial update and returns the full stored row.
func UpdateVilla(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var u domain.VillaUpdate
		if err := decode(r, &u); err != nil {
			badRequest(w, "malformed request body")
			return
		}

		v, err := d.Controller.UpdateVilla(r.Context(), id, u)
		if err != nil {
			writeError(w, err)
			return
		}

		d.Logger.Info("villa updated", logger.String("id", id))
		writeJSON(w, http.StatusOK, v)
	}
}

// DeleteVilla removes a villa. Deleting an id the remote store no
// longer has is still a 204.
func DeleteVilla(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := d.Controller.DeleteVilla(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		d.Logger.Info("villa deleted", logger.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// RefreshVillas re-fetches the full catalog from the remote store.
func RefreshVillas(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Controller.Reload(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, villaListResponse{
			Villas: d.Controller.Villas("", domain.FilterAll),
			Total:  d.Controller.CatalogCount(),
		})
	}
}
