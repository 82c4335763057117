package remote

import (
	"sync"

	"github.com/supabase-community/gotrue-go/types"
	supabase "github.com/supabase-community/supabase-go"

	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/logger"
)

// Gateway owns the single cached Supabase client handle. It is
// constructor-injected into every component that needs remote access;
// there is no package-level singleton.
//
// Configuration sources, in priority order: explicit config passed to
// Handle > the most recently cached handle > environment-supplied
// defaults > none.
type Gateway struct {
	mu      sync.Mutex
	env     domain.ConnectionConfig // environment-supplied defaults
	current domain.ConnectionConfig // config the cached handle was built from
	handle  *supabase.Client
	log     logger.Logger
}

// NewGateway creates a gateway with the environment-supplied fallback
// configuration. No handle is constructed until first use.
func NewGateway(env domain.ConnectionConfig, log logger.Logger) *Gateway {
	return &Gateway{env: env, log: log}
}

// Handle resolves a client handle. An explicit config always wins: when
// complete it builds a fresh handle and becomes the new cached default,
// when incomplete it yields nil without consulting the cache or the
// environment. Only a nil cfg falls back to cache then env. Returns nil
// when the chosen source lacks endpoint or key, or when construction
// fails: callers treat nil as "not configured", never as a crash.
func (g *Gateway) Handle(cfg *domain.ConnectionConfig) *supabase.Client {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cfg != nil {
		if !cfg.Complete() {
			return nil
		}
		return g.buildLocked(*cfg)
	}
	if g.handle != nil {
		return g.handle
	}
	if g.env.Complete() {
		return g.buildLocked(g.env)
	}
	return nil
}

// Reset atomically swaps the cached handle for one built from cfg.
// Used on settings changes so no caller ever sees stale endpoint/key
// material; dependent state is re-fetched by the controller afterwards.
func (g *Gateway) Reset(cfg domain.ConnectionConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.handle = nil
	g.current = domain.ConnectionConfig{}
	if cfg.Complete() {
		g.buildLocked(cfg)
	}
}

// Configured reports whether a handle is currently resolvable.
func (g *Gateway) Configured() bool {
	return g.Handle(nil) != nil
}

// Endpoint returns the endpoint of the active configuration, for
// diagnostics. Never exposes the key.
func (g *Gateway) Endpoint() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.handle != nil {
		return g.current.URL
	}
	return g.env.URL
}

// AttachSession binds the signed-in user's token material to the cached
// handle so subsequent table operations run under the remote store's
// row-level security policy.
func (g *Gateway) AttachSession(s domain.Session) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.handle == nil {
		return
	}
	g.handle.UpdateAuthSession(types.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    "bearer",
	})
}

func (g *Gateway) buildLocked(cfg domain.ConnectionConfig) *supabase.Client {
	client, err := supabase.NewClient(cfg.URL, cfg.AnonKey, &supabase.ClientOptions{})
	if err != nil {
		// Construction failure is treated exactly like "not configured".
		g.log.Warn("failed to initialize remote store client",
			logger.String("endpoint", cfg.URL),
			logger.Error(err))
		return nil
	}
	g.handle = client
	g.current = cfg
	g.log.Debug("remote store handle initialized",
		logger.String("endpoint", cfg.URL))
	return client
}
