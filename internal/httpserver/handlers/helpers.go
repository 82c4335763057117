package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/villapro/villapro/internal/control"
	"github.com/villapro/villapro/internal/domain"
)

// errorResponse is the uniform error body. Code is a stable machine
// identifier; Error is the human message shown inline in the dashboard.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Hint  string `json:"hint,omitempty"`
}

const schemaHint = "Create the villas table in your backend project, then retry."

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP statuses:
// recoverable precondition failures are 4xx, backend trouble is 5xx.
func writeError(w http.ResponseWriter, err error) {
	var (
		authErr      *domain.AuthError
		transportErr *domain.TransportError
		valErr       *domain.ValidationError
	)

	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		writeJSON(w, http.StatusPreconditionFailed, errorResponse{
			Error: "backend connection is not configured",
			Code:  "not_configured",
			Hint:  "Provide the backend URL and access key on the settings surface.",
		})
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error: authErr.Error(),
			Code:  "auth_failed",
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: "villa not found",
			Code:  "not_found",
		})
	case errors.Is(err, domain.ErrSchemaMissing):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: "the villas table does not exist in the configured backend",
			Code:  "schema_missing",
			Hint:  schemaHint,
		})
	case errors.Is(err, control.ErrDescribePrecondition):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: err.Error(),
			Code:  "describe_precondition",
		})
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: err.Error(),
			Code:  "invalid_input",
		})
	case errors.As(err, &transportErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: transportErr.Error(),
			Code:  "transport_error",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: err.Error(),
			Code:  "internal",
		})
	}
}

// decode reads a JSON request body into dst, rejecting unknown fields.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Code: "invalid_input"})
}
