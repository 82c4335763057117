package control

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/index"
	"github.com/villapro/villapro/internal/logger"
)

// View is the active screen of the admin surface.
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
	ViewList      View = "list"
	ViewAdd       View = "add"
	ViewEdit      View = "edit"
	ViewSettings  View = "settings"
)

// Busy-flag names, one per independently tracked operation.
const (
	OpSignIn   = "sign_in"
	OpReload   = "reload"
	OpAdd      = "add"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpSettings = "settings"
)

// ErrDescribePrecondition is returned when the generate-description
// preconditions are unmet; the remote call is never issued.
var ErrDescribePrecondition = errors.New("name, location and a monthly price are required before generating a description")

// Controller is the application state: the authenticated session, the
// in-memory catalog, the active view and the per-operation busy flags.
// It orchestrates auth, repository and generator calls and reconciles
// their results into local state. Catalog mutations go to the remote
// store first; local state changes only after remote confirmation.
type Controller struct {
	mu      sync.RWMutex
	log     logger.Logger
	gw      GatewayPort
	auth    AuthPort
	repo    CatalogPort
	desc    DescriberPort
	store   LocalStore
	catalog *index.Catalog

	session *domain.Session
	view    View
	busy    map[string]bool
	conn    *domain.ConnectionConfig // persisted settings, nil = env defaults only
}

func New(gw GatewayPort, auth AuthPort, repo CatalogPort, desc DescriberPort, store LocalStore, log logger.Logger) *Controller {
	return &Controller{
		log:     log,
		gw:      gw,
		auth:    auth,
		repo:    repo,
		desc:    desc,
		store:   store,
		catalog: index.NewCatalog(),
		view:    ViewLogin,
		busy:    make(map[string]bool),
	}
}

// Startup restores persisted state: connection configuration first,
// then the session (via the provider's refresh mechanism), then the
// catalog. Unrestorable pieces degrade silently to the anonymous,
// warm-snapshot state; startup itself only fails on local storage
// trouble.
func (c *Controller) Startup(ctx context.Context) error {
	cfg, err := c.store.LoadConnectionConfig(ctx)
	if err != nil {
		return err
	}
	if cfg != nil && cfg.Complete() {
		c.gw.Reset(*cfg)
		c.mu.Lock()
		c.conn = cfg
		c.mu.Unlock()
		c.log.Info("connection configuration restored",
			logger.String("endpoint", cfg.URL))
	}

	// Warm the catalog from the local snapshot so the list renders
	// immediately; a successful reload below replaces it.
	if snapshot, err := c.store.LoadSnapshot(ctx); err != nil {
		c.log.Warn("failed to load catalog snapshot", logger.Error(err))
	} else if len(snapshot) > 0 {
		c.catalog.Replace(snapshot)
		c.log.Info("catalog warmed from snapshot", logger.Int("count", len(snapshot)))
	}

	token, err := c.store.LoadRefreshToken(ctx)
	if err != nil {
		c.log.Warn("failed to load stored session", logger.Error(err))
		return nil
	}
	session, err := c.auth.Restore(ctx, token)
	if err != nil || session == nil {
		return nil
	}

	c.adoptSession(ctx, *session)
	if err := c.Reload(ctx); err != nil {
		c.log.Warn("startup catalog reload failed", logger.Error(err))
	}
	return nil
}

// SignIn transitions anonymous -> authenticated and reloads the
// catalog. On failure the state is unchanged and the provider's
// message is returned for inline display.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	c.begin(OpSignIn)
	defer c.end(OpSignIn)

	session, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	c.adoptSession(ctx, *session)
	if err := c.Reload(ctx); err != nil {
		// Signed in, but the first fetch failed; the list surface
		// reports the reload error on its own.
		c.log.Warn("post-login catalog reload failed", logger.Error(err))
	}
	return nil
}

// SignOut transitions authenticated -> anonymous. Clears the in-memory
// catalog and stored session material; never the persisted connection
// configuration.
func (c *Controller) SignOut(ctx context.Context) {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.view = ViewLogin
	c.mu.Unlock()

	c.auth.SignOut(ctx, session)
	c.catalog.Clear()
	if err := c.store.ClearSession(ctx); err != nil {
		c.log.Warn("failed to clear stored session", logger.Error(err))
	}
	c.log.Info("signed out")
}

// Session returns a copy of the current session, nil when anonymous.
func (c *Controller) Session() *domain.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Reload fetches the full catalog from the remote store and replaces
// local state, then mirrors the result into the snapshot (best effort).
func (c *Controller) Reload(ctx context.Context) error {
	c.begin(OpReload)
	defer c.end(OpReload)

	villas, err := c.repo.FetchAll(ctx)
	if err != nil {
		return err
	}
	c.catalog.Replace(villas)
	if err := c.store.SaveSnapshot(ctx, villas); err != nil {
		c.log.Warn("failed to mirror catalog snapshot", logger.Error(err))
	}
	c.log.Info("catalog reloaded", logger.Int("count", len(villas)))
	return nil
}

// Add inserts a villa remotely, then reflects the stored row (with its
// server-assigned id and timestamp) locally.
func (c *Controller) Add(ctx context.Context, in domain.VillaInput) (domain.Villa, error) {
	if err := in.Validate(); err != nil {
		return domain.Villa{}, err
	}

	c.begin(OpAdd)
	defer c.end(OpAdd)

	v, err := c.repo.Insert(ctx, in)
	if err != nil {
		return domain.Villa{}, err
	}
	c.catalog.Upsert(v)
	c.setView(ViewList)
	return v, nil
}

// UpdateVilla applies a partial update remotely, then reflects the
// returned full row locally.
func (c *Controller) UpdateVilla(ctx context.Context, id string, u domain.VillaUpdate) (domain.Villa, error) {
	if err := u.Validate(); err != nil {
		return domain.Villa{}, err
	}

	c.begin(OpUpdate)
	defer c.end(OpUpdate)

	v, err := c.repo.Update(ctx, id, u)
	if err != nil {
		return domain.Villa{}, err
	}
	c.catalog.Upsert(v)
	c.setView(ViewList)
	return v, nil
}

// DeleteVilla removes a villa remotely, then locally. Deleting an id
// the store no longer has is success.
func (c *Controller) DeleteVilla(ctx context.Context, id string) error {
	c.begin(OpDelete)
	defer c.end(OpDelete)

	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.catalog.Remove(id)
	return nil
}

// Villas returns the search/filtered catalog view: case-insensitive
// substring on name or location, status equality or "All". Recomputed
// synchronously from local state; never touches remote storage.
func (c *Controller) Villas(query, status string) []domain.Villa {
	return domain.Filter(c.catalog.All(), query, status)
}

// Villa retrieves a single villa from local state.
func (c *Controller) Villa(id string) (domain.Villa, bool) {
	return c.catalog.Get(id)
}

// Stats returns the dashboard aggregates over the full catalog.
func (c *Controller) Stats() domain.Stats {
	return c.catalog.Stats()
}

// Describe generates a marketing description. The preconditions are
// checked here so the best-effort generator is never even invoked with
// unusable input.
func (c *Controller) Describe(ctx context.Context, name, location string, priceMonthly float64) (string, error) {
	if name == "" || location == "" || priceMonthly <= 0 {
		return "", ErrDescribePrecondition
	}
	return c.desc.Generate(ctx, name, location, priceMonthly), nil
}

// Settings returns the persisted connection configuration, redacted,
// and whether the gateway currently resolves a handle.
func (c *Controller) Settings() (domain.ConnectionConfig, bool) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return domain.ConnectionConfig{}, c.gw.Configured()
	}
	return conn.Redacted(), c.gw.Configured()
}

// SaveSettings persists a new connection configuration, atomically
// swaps the gateway handle, and re-initializes dependent state. The
// previous session is dropped: its token material belongs to the old
// endpoint.
func (c *Controller) SaveSettings(ctx context.Context, cfg domain.ConnectionConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.begin(OpSettings)
	defer c.end(OpSettings)

	if err := c.store.SaveConnectionConfig(ctx, cfg); err != nil {
		return err
	}
	c.gw.Reset(cfg)

	c.mu.Lock()
	c.conn = &cfg
	c.session = nil
	c.view = ViewLogin
	c.mu.Unlock()

	c.catalog.Clear()
	if err := c.store.ClearSession(ctx); err != nil {
		c.log.Warn("failed to clear stored session", logger.Error(err))
	}

	// Re-fetch under the new configuration; failure here is reported
	// by the list surface, not by the settings form.
	if err := c.Reload(ctx); err != nil {
		c.log.Warn("reload after settings change failed", logger.Error(err))
	}
	c.log.Info("connection configuration updated",
		logger.String("endpoint", cfg.URL))
	return nil
}

// ActiveView returns the current view.
func (c *Controller) ActiveView() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.view
}

// SetView changes the active view. Unknown views are ignored; edit and
// add require an authenticated session, like every catalog surface.
func (c *Controller) SetView(v View) {
	switch v {
	case ViewLogin, ViewDashboard, ViewList, ViewAdd, ViewEdit, ViewSettings:
		c.setView(v)
	}
}

// Busy reports whether the named operation is currently in flight.
func (c *Controller) Busy(op string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.busy[op]
}

// CatalogCount returns the size of the in-memory catalog.
func (c *Controller) CatalogCount() int {
	return c.catalog.Count()
}

// LastReload returns the time of the last full catalog fetch, zero
// when the catalog has never been reloaded.
func (c *Controller) LastReload() time.Time {
	return c.catalog.LastReload()
}

// Endpoint returns the backend URL the gateway currently targets.
func (c *Controller) Endpoint() string {
	return c.gw.Endpoint()
}

// DescriberEnabled reports whether the generator has a credential.
func (c *Controller) DescriberEnabled() bool {
	return c.desc.Enabled()
}

// Configured reports whether the remote store is reachable in
// principle (a handle resolves from some configuration source).
func (c *Controller) Configured() bool {
	return c.gw.Configured()
}

func (c *Controller) adoptSession(ctx context.Context, s domain.Session) {
	c.mu.Lock()
	c.session = &s
	c.view = ViewDashboard
	c.mu.Unlock()

	c.gw.AttachSession(s)
	if err := c.store.SaveSession(ctx, s); err != nil {
		c.log.Warn("failed to persist session material", logger.Error(err))
	}
}

func (c *Controller) setView(v View) {
	c.mu.Lock()
	c.view = v
	c.mu.Unlock()
}

func (c *Controller) begin(op string) {
	c.mu.Lock()
	c.busy[op] = true
	c.mu.Unlock()
}

func (c *Controller) end(op string) {
	c.mu.Lock()
	delete(c.busy, op)
	c.mu.Unlock()
}
