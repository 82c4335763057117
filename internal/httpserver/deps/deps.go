package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/villapro/villapro/internal/control"
	"github.com/villapro/villapro/internal/logger"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	Controller   *control.Controller // application state, shared by every handler
	RedisClient  *redis.Client       // local storage connection, for readiness probing
	AllowedHosts []string            // Host headers allowed to access the server
	AllowedCIDRS []string            // IPs allowed to access healthz/readyz/infra endpoints
	TrustProxy   bool                // true if running behind a trusted reverse proxy

	// Login brute-force protection.
	LoginBurst        int
	LoginRefillPerMin int
}
