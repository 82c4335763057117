package handlers

import (
	"net/http"
	"strings"

	"github.com/villapro/villapro/internal/httpserver/deps"
)

type describeRequest struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	PriceMonthly float64 `json:"price_monthly"`
}

type describeResponse struct {
	Description string `json:"description"`
	Generated   bool   `json:"generated"` // false when the generator has no credential
}

// Describe generates a marketing description for the add/edit forms.
// Best effort: generation trouble degrades to the fallback text, never
// to an error.
func Describe(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req describeRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "malformed request body")
			return
		}

		text, err := d.Controller.Describe(r.Context(),
			strings.TrimSpace(req.Name), strings.TrimSpace(req.Location), req.PriceMonthly)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, describeResponse{
			Description: text,
			Generated:   d.Controller.DescriberEnabled(),
		})
	}
}
