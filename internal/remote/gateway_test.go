package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/logger"
)

func testLogger() logger.Logger {
	return logger.New("error", false)
}

func TestHandleUnconfiguredReturnsNil(t *testing.T) {
	tests := []struct {
		name string
		env  domain.ConnectionConfig
		cfg  *domain.ConnectionConfig
	}{
		{name: "nothing anywhere"},
		{
			name: "env missing key",
			env:  domain.ConnectionConfig{URL: "https://abc.supabase.co"},
		},
		{
			name: "env missing url",
			env:  domain.ConnectionConfig{AnonKey: "anon"},
		},
		{
			name: "explicit config missing key",
			cfg:  &domain.ConnectionConfig{URL: "https://abc.supabase.co"},
		},
		{
			name: "explicit config missing url",
			cfg:  &domain.ConnectionConfig{AnonKey: "anon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGateway(tt.env, testLogger())
			if h := g.Handle(tt.cfg); h != nil {
				t.Errorf("Handle() = %v, want nil for incomplete configuration", h)
			}
			if g.Configured() {
				t.Error("Configured() = true, want false")
			}
		})
	}
}

func TestHandleIncompleteExplicitConfigBypassesCache(t *testing.T) {
	env := domain.ConnectionConfig{URL: "https://env.supabase.co", AnonKey: "env-key"}
	g := NewGateway(env, testLogger())

	if g.Handle(nil) == nil {
		t.Fatal("Handle(nil) = nil, want handle from env defaults")
	}

	// An explicit config missing the key must yield nil, not the cached
	// handle: the caller asked for a specific endpoint and handing back a
	// client bound elsewhere would send its data to the wrong store.
	partial := &domain.ConnectionConfig{URL: "https://user.supabase.co"}
	if h := g.Handle(partial); h != nil {
		t.Errorf("Handle(partial) = %v, want nil despite cached handle", h)
	}

	// The cached default survives untouched.
	if h := g.Handle(nil); h == nil {
		t.Error("Handle(nil) = nil, cached handle should be unaffected")
	}
	if got := g.Endpoint(); got != env.URL {
		t.Errorf("Endpoint() = %s, want %s", got, env.URL)
	}
}

func TestHandleCachesAndPrioritizes(t *testing.T) {
	env := domain.ConnectionConfig{URL: "https://env.supabase.co", AnonKey: "env-key"}
	g := NewGateway(env, testLogger())

	// First resolution falls back to the environment defaults.
	h1 := g.Handle(nil)
	if h1 == nil {
		t.Fatal("Handle(nil) = nil, want handle from env defaults")
	}
	if got := g.Endpoint(); got != env.URL {
		t.Errorf("Endpoint() = %s, want %s", got, env.URL)
	}

	// Without new config the cached handle is reused.
	if h2 := g.Handle(nil); h2 != h1 {
		t.Error("Handle(nil) should return the cached handle")
	}

	// Explicit config always builds a fresh handle and becomes the new
	// default, even though a cached handle exists.
	explicit := domain.ConnectionConfig{URL: "https://user.supabase.co", AnonKey: "user-key"}
	h3 := g.Handle(&explicit)
	if h3 == nil {
		t.Fatal("Handle(explicit) = nil, want fresh handle")
	}
	if h3 == h1 {
		t.Error("explicit config must not reuse the cached handle")
	}
	if got := g.Endpoint(); got != explicit.URL {
		t.Errorf("Endpoint() after explicit config = %s, want %s", got, explicit.URL)
	}
	if h4 := g.Handle(nil); h4 != h3 {
		t.Error("explicit config should become the cached default")
	}
}

func TestResetSwapsHandle(t *testing.T) {
	g := NewGateway(domain.ConnectionConfig{}, testLogger())

	first := domain.ConnectionConfig{URL: "https://one.supabase.co", AnonKey: "k1"}
	h1 := g.Handle(&first)
	if h1 == nil {
		t.Fatal("Handle(first) = nil")
	}

	second := domain.ConnectionConfig{URL: "https://two.supabase.co", AnonKey: "k2"}
	g.Reset(second)

	h2 := g.Handle(nil)
	if h2 == nil || h2 == h1 {
		t.Errorf("Reset should replace the cached handle, got %v (old %v)", h2, h1)
	}
	if got := g.Endpoint(); got != second.URL {
		t.Errorf("Endpoint() after Reset = %s, want %s", got, second.URL)
	}

	// Reset to an incomplete config drops the handle entirely.
	g.Reset(domain.ConnectionConfig{})
	if g.Configured() {
		t.Error("Configured() = true after Reset to empty config")
	}
}

func TestAuthUnconfigured(t *testing.T) {
	g := NewGateway(domain.ConnectionConfig{}, testLogger())
	a := NewAuth(g, testLogger())
	ctx := context.Background()

	if _, err := a.SignIn(ctx, "agent@villapro.com", "pw"); !errors.Is(err, domain.ErrNotConfigured) {
		t.Errorf("SignIn() error = %v, want ErrNotConfigured", err)
	}

	// Silent no-ops when never configured.
	a.SignOut(ctx, &domain.Session{AccessToken: "tok"})
	if s, err := a.Restore(ctx, "refresh-token"); s != nil || err != nil {
		t.Errorf("Restore() = %v, %v, want nil, nil", s, err)
	}
}

func TestCatalogUnconfigured(t *testing.T) {
	g := NewGateway(domain.ConnectionConfig{}, testLogger())
	r := NewCatalog(g, testLogger())
	ctx := context.Background()

	if _, err := r.FetchAll(ctx); !errors.Is(err, domain.ErrNotConfigured) {
		t.Errorf("FetchAll() error = %v, want ErrNotConfigured", err)
	}
	if _, err := r.Insert(ctx, domain.VillaInput{Name: "Villa X"}); !errors.Is(err, domain.ErrNotConfigured) {
		t.Errorf("Insert() error = %v, want ErrNotConfigured", err)
	}
	if _, err := r.Update(ctx, "v1", domain.VillaUpdate{}); !errors.Is(err, domain.ErrNotConfigured) {
		t.Errorf("Update() error = %v, want ErrNotConfigured", err)
	}
	if err := r.Delete(ctx, "v1"); !errors.Is(err, domain.ErrNotConfigured) {
		t.Errorf("Delete() error = %v, want ErrNotConfigured", err)
	}
}
