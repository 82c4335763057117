package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/villapro/villapro/internal/domain"
)

const (
	// DefaultSnapshotTTL bounds how long a stale catalog snapshot may
	// survive without a successful remote fetch (48 hours).
	DefaultSnapshotTTL = 48 * time.Hour
	// DefaultSessionTTL matches the provider's refresh-token horizon
	// closely enough that expired material is cleaned up locally.
	DefaultSessionTTL = 30 * 24 * time.Hour
)

// Store is the process's durable local key-value storage, the server
// equivalent of the original's browser localStorage. It holds the
// connection configuration, the catalog snapshot, and restorable
// session material; never the source of truth for catalog data.
type Store struct {
	client *redis.Client
}

// NewStore creates a store over an established Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// SaveConnectionConfig persists the settings-form configuration.
// No TTL: connection settings survive until replaced.
func (s *Store) SaveConnectionConfig(ctx context.Context, cfg domain.ConnectionConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal connection config: %w", err)
	}
	if err := s.client.Set(ctx, KeyConnectionConfig, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save connection config: %w", err)
	}
	return nil
}

// LoadConnectionConfig reads the persisted configuration. A missing key
// yields (nil, nil): never-configured is not an error.
func (s *Store) LoadConnectionConfig(ctx context.Context) (*domain.ConnectionConfig, error) {
	data, err := s.client.Get(ctx, KeyConnectionConfig).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load connection config: %w", err)
	}

	var cfg domain.ConnectionConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connection config: %w", err)
	}
	return &cfg, nil
}

// SaveSnapshot mirrors the catalog after a successful remote fetch.
// Best-effort at call sites; failures only cost the warm start.
func (s *Store) SaveSnapshot(ctx context.Context, villas []domain.Villa) error {
	data, err := json.Marshal(villas)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}
	if err := s.client.Set(ctx, KeySnapshot, data, DefaultSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save catalog snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the last catalog snapshot; empty when absent.
func (s *Store) LoadSnapshot(ctx context.Context) ([]domain.Villa, error) {
	data, err := s.client.Get(ctx, KeySnapshot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.Villa{}, nil
		}
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	villas := []domain.Villa{}
	if err := json.Unmarshal(data, &villas); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}
	return villas, nil
}

// storedSession is the persisted shape of restorable session material.
type storedSession struct {
	Email        string `json:"email"`
	RefreshToken string `json:"refresh_token"`
}

// SaveSession persists the material needed to restore a session at
// startup via the provider's refresh mechanism.
func (s *Store) SaveSession(ctx context.Context, session domain.Session) error {
	data, err := json.Marshal(storedSession{
		Email:        session.Email,
		RefreshToken: session.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, KeySession, data, DefaultSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// LoadRefreshToken returns the stored refresh token, empty when none.
func (s *Store) LoadRefreshToken(ctx context.Context) (string, error) {
	data, err := s.client.Get(ctx, KeySession).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return stored.RefreshToken, nil
}

// ClearSession drops stored session material (sign-out).
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.client.Del(ctx, KeySession).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Ping reports whether the local storage is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
