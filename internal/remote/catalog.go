package remote

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/logger"
)

// Table holding the catalog records in the remote store.
const Table = "villas"

// Catalog is the thin pass-through repository over the remote villas
// table. It performs no authorization checks of its own; access control
// is the remote store's row-level security policy.
type Catalog struct {
	gw  *Gateway
	log logger.Logger
}

func NewCatalog(gw *Gateway, log logger.Logger) *Catalog {
	return &Catalog{gw: gw, log: log}
}

// FetchAll returns every record ordered by creation time descending.
// An empty table yields an empty slice, not an error.
func (r *Catalog) FetchAll(ctx context.Context) ([]domain.Villa, error) {
	h := r.gw.Handle(nil)
	if h == nil {
		return nil, domain.ErrNotConfigured
	}

	data, _, err := h.From(Table).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, classify("fetch villas", err)
	}

	villas := []domain.Villa{}
	if err := json.Unmarshal(data, &villas); err != nil {
		return nil, &domain.TransportError{Op: "decode villas", Err: err}
	}
	r.log.Debug("fetched villas", logger.Int("count", len(villas)))
	return villas, nil
}

// Insert sends a new row and returns it as stored, including the
// server-assigned id and creation timestamp. The payload type carries
// no id field, so a client-supplied identifier can never reach the
// store. Schema constraints (required columns) are enforced remotely.
func (r *Catalog) Insert(ctx context.Context, in domain.VillaInput) (domain.Villa, error) {
	h := r.gw.Handle(nil)
	if h == nil {
		return domain.Villa{}, domain.ErrNotConfigured
	}

	data, _, err := h.From(Table).
		Insert(in, false, "", "representation", "").
		Single().
		Execute()
	if err != nil {
		return domain.Villa{}, classify("insert villa", err)
	}

	var v domain.Villa
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Villa{}, &domain.TransportError{Op: "decode inserted villa", Err: err}
	}
	r.log.Info("villa inserted", logger.String("id", v.ID))
	return v, nil
}

// Update applies only the supplied fields to the row matching id and
// returns the full updated row. A zero-row match is ErrNotFound.
func (r *Catalog) Update(ctx context.Context, id string, u domain.VillaUpdate) (domain.Villa, error) {
	h := r.gw.Handle(nil)
	if h == nil {
		return domain.Villa{}, domain.ErrNotConfigured
	}

	data, _, err := h.From(Table).
		Update(u, "representation", "").
		Eq("id", id).
		Single().
		Execute()
	if err != nil {
		return domain.Villa{}, classify("update villa", err)
	}

	var v domain.Villa
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Villa{}, &domain.TransportError{Op: "decode updated villa", Err: err}
	}
	r.log.Info("villa updated", logger.String("id", v.ID))
	return v, nil
}

// Delete removes the row matching id. Zero rows matched is success:
// deletion is idempotent.
func (r *Catalog) Delete(ctx context.Context, id string) error {
	h := r.gw.Handle(nil)
	if h == nil {
		return domain.ErrNotConfigured
	}

	if _, _, err := h.From(Table).
		Delete("", "").
		Eq("id", id).
		Execute(); err != nil {
		return classify("delete villa", err)
	}
	r.log.Info("villa deleted", logger.String("id", id))
	return nil
}

// classify maps provider error text onto the domain error taxonomy.
// PostgREST reports a missing table as PGRST205 (or the underlying
// 42P01 "relation does not exist") and a zero-row Single() result as
// PGRST116; everything else is a transport failure surfaced verbatim.
func classify(op string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "PGRST205"),
		strings.Contains(msg, "42P01"),
		strings.Contains(msg, "Could not find the table"),
		strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"):
		return domain.ErrSchemaMissing
	case strings.Contains(msg, "PGRST116"),
		strings.Contains(msg, "multiple (or no) rows returned"),
		strings.Contains(msg, "0 rows"):
		return domain.ErrNotFound
	}
	return &domain.TransportError{Op: op, Err: err}
}
