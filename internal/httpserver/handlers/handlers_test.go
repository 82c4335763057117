package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/villapro/villapro/internal/control"
	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/httpserver/deps"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not configured",
			err:        domain.ErrNotConfigured,
			wantStatus: http.StatusPreconditionFailed,
			wantCode:   "not_configured",
		},
		{
			name:       "auth failed",
			err:        &domain.AuthError{Reason: "Invalid login credentials"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "auth_failed",
		},
		{
			name:       "not found",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "schema missing",
			err:        domain.ErrSchemaMissing,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "schema_missing",
		},
		{
			name:       "describe precondition",
			err:        control.ErrDescribePrecondition,
			wantStatus: http.StatusBadRequest,
			wantCode:   "describe_precondition",
		},
		{
			name:       "validation",
			err:        &domain.ValidationError{Message: "name is required"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_input",
		},
		{
			name:       "transport",
			err:        &domain.TransportError{Op: "fetch villas", Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
			wantCode:   "transport_error",
		},
		{
			name:       "wrapped sentinel",
			err:        &domain.TransportError{Op: "fetch villas", Err: domain.ErrSchemaMissing},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "schema_missing",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if body.Error == "" {
				t.Error("error message must not be empty")
			}
		})
	}
}

func TestSchemaMissingCarriesSetupHint(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, domain.ErrSchemaMissing)

	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Hint != schemaHint {
		t.Errorf("hint = %q, want setup instructions", body.Hint)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.c","bogus":1}`))

	var dst loginRequest
	if err := decode(req, &dst); err == nil {
		t.Error("decode should reject unknown fields")
	}
}

func TestHealthz(t *testing.T) {
	d := deps.Deps{
		StartTime: time.Now().Add(-time.Minute),
		Version:   "1.2.3",
		Commit:    "abc1234",
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	Healthz(d)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body healthzResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Status != "ok" || body.Version != "1.2.3" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.UptimeSeconds < 59 {
		t.Errorf("uptime = %v, want >= 59s", body.UptimeSeconds)
	}
}

func TestReadyzWithoutLocalStorage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	Readyz(deps.Deps{})(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	var body readyzResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Ready {
		t.Error("ready must be false without local storage")
	}
}
