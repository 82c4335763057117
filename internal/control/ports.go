package control

import (
	"context"

	"github.com/villapro/villapro/internal/domain"
)

// Ports the controller drives. The concrete implementations live in
// internal/remote, internal/describe and internal/store/redis; tests
// substitute in-memory fakes.

type AuthPort interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, session *domain.Session)
	Restore(ctx context.Context, refreshToken string) (*domain.Session, error)
}

type CatalogPort interface {
	FetchAll(ctx context.Context) ([]domain.Villa, error)
	Insert(ctx context.Context, in domain.VillaInput) (domain.Villa, error)
	Update(ctx context.Context, id string, u domain.VillaUpdate) (domain.Villa, error)
	Delete(ctx context.Context, id string) error
}

type DescriberPort interface {
	Generate(ctx context.Context, name, location string, priceMonthly float64) string
	Enabled() bool
}

type GatewayPort interface {
	Reset(cfg domain.ConnectionConfig)
	AttachSession(s domain.Session)
	Configured() bool
	Endpoint() string
}

type LocalStore interface {
	SaveConnectionConfig(ctx context.Context, cfg domain.ConnectionConfig) error
	LoadConnectionConfig(ctx context.Context) (*domain.ConnectionConfig, error)
	SaveSnapshot(ctx context.Context, villas []domain.Villa) error
	LoadSnapshot(ctx context.Context) ([]domain.Villa, error)
	SaveSession(ctx context.Context, session domain.Session) error
	LoadRefreshToken(ctx context.Context) (string, error)
	ClearSession(ctx context.Context) error
}
