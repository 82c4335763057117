package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request budget, covers the description generator
	CORSOrigins     []string      // origins allowed to call the API from a browser

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Backend connection defaults. Settings persisted at runtime take
	// precedence; these only seed a fresh deployment.
	SupabaseURL     string
	SupabaseAnonKey string

	// Description generator. Empty key disables generation; the
	// fallback text is served instead.
	OpenAIAPIKey string
	OpenAIModel  string

	// Redis (local storage)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict healthz/readyz/infra to specific IPs
	TrustProxy   bool     // true => trust X-Forwarded-For headers

	// Login brute-force protection.
	LoginBurst        int
	LoginRefillPerMin int
}

// fileConfig is the optional YAML file shape (VILLAPRO_CONFIG).
// Environment variables override anything set here.
type fileConfig struct {
	Listen          string   `yaml:"listen"`
	LogLevel        string   `yaml:"log_level"`
	PrettyLog       *bool    `yaml:"pretty_log"`
	CORSOrigins     []string `yaml:"cors_origins"`
	SupabaseURL     string   `yaml:"supabase_url"`
	SupabaseAnonKey string   `yaml:"supabase_anon_key"`
	OpenAIModel     string   `yaml:"openai_model"`
	RedisAddr       string   `yaml:"redis_addr"`
	RedisDB         *int     `yaml:"redis_db"`
	AllowedHosts    []string `yaml:"allowed_hosts"`
	AllowedCIDRS    []string `yaml:"allowed_cidrs"`
	TrustProxy      *bool    `yaml:"trust_proxy"`
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenAddr:      ":8080",
		ShutdownTimeout: 5 * time.Second,
		RequestTimeout:  30 * time.Second,

		// Logging
		LogLevel:  "info",
		PrettyLog: true,

		OpenAIModel: "", // generator default applies

		// Redis settings
		RedisAddr:           "localhost:6379",
		RedisUser:           "default",
		RedisDB:             0,
		RedisDT:             5 * time.Second,
		RedisRT:             3 * time.Second,
		RedisWT:             3 * time.Second,
		RedisMaxWait:        10 * time.Second,
		RedisPingTimeout:    5 * time.Second,
		RedisPoolSize:       10,
		RedisConnectTimeout: 30 * time.Second,
		RedisRetryInterval:  2 * time.Second,

		TrustProxy:        false,
		LoginBurst:        5,
		LoginRefillPerMin: 3,
	}

	if path := getenv("VILLAPRO_CONFIG", ""); path != "" {
		applyFile(cfg, path)
	}
	applyEnv(cfg)

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("FATAL: VILLAPRO_REDIS_PASSWORD is required when VILLAPRO_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.SupabaseAnonKey = "***REDACTED***"
		cfgCopy.OpenAIAPIKey = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("FATAL: cannot read config file %s: %v", path, err))
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		panic(fmt.Sprintf("FATAL: cannot parse config file %s: %v", path, err))
	}

	if fc.Listen != "" {
		cfg.ListenAddr = fc.Listen
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.PrettyLog != nil {
		cfg.PrettyLog = *fc.PrettyLog
	}
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}
	if fc.SupabaseURL != "" {
		cfg.SupabaseURL = fc.SupabaseURL
	}
	if fc.SupabaseAnonKey != "" {
		cfg.SupabaseAnonKey = fc.SupabaseAnonKey
	}
	if fc.OpenAIModel != "" {
		cfg.OpenAIModel = fc.OpenAIModel
	}
	if fc.RedisAddr != "" {
		cfg.RedisAddr = fc.RedisAddr
	}
	if fc.RedisDB != nil {
		cfg.RedisDB = *fc.RedisDB
	}
	if len(fc.AllowedHosts) > 0 {
		cfg.AllowedHosts = fc.AllowedHosts
	}
	if len(fc.AllowedCIDRS) > 0 {
		cfg.AllowedCIDRS = fc.AllowedCIDRS
	}
	if fc.TrustProxy != nil {
		cfg.TrustProxy = *fc.TrustProxy
	}
}

func applyEnv(cfg *Config) {
	cfg.ListenAddr = getenv("VILLAPRO_LISTEN_ADDR", cfg.ListenAddr)
	cfg.ShutdownTimeout = mustDuration("VILLAPRO_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.RequestTimeout = mustDuration("VILLAPRO_REQUEST_TIMEOUT", cfg.RequestTimeout)
	if v := getenv("VILLAPRO_CORS_ORIGINS", ""); v != "" {
		cfg.CORSOrigins = splitAndTrim(v)
	}

	cfg.LogLevel = getenv("VILLAPRO_LOG_LEVEL", cfg.LogLevel)
	cfg.PrettyLog = mustBool("VILLAPRO_PRETTY_LOG", cfg.PrettyLog)

	cfg.SupabaseURL = getenv("VILLAPRO_SUPABASE_URL", cfg.SupabaseURL)
	cfg.SupabaseAnonKey = getenv("VILLAPRO_SUPABASE_ANON_KEY", cfg.SupabaseAnonKey)
	cfg.OpenAIAPIKey = getenv("VILLAPRO_OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIModel = getenv("VILLAPRO_OPENAI_MODEL", cfg.OpenAIModel)

	cfg.RedisAddr = getenv("VILLAPRO_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisUser = getenv("VILLAPRO_REDIS_USERNAME", cfg.RedisUser)
	cfg.RedisPasswordRequired = mustBool("VILLAPRO_REDIS_PASSWORD_REQUIRED", cfg.RedisPasswordRequired)
	cfg.RedisPassword = getenv("VILLAPRO_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getenvInt("VILLAPRO_REDIS_DB", cfg.RedisDB)
	cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", cfg.RedisDT)
	cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", cfg.RedisRT)
	cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", cfg.RedisWT)
	cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", cfg.RedisMaxWait)
	cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", cfg.RedisPingTimeout)
	cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", cfg.RedisPoolSize)
	cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", cfg.RedisConnectTimeout)
	cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", cfg.RedisRetryInterval)

	if v := getenv("VILLAPRO_ALLOWED_HOSTS", ""); v != "" {
		cfg.AllowedHosts = splitAndTrim(v)
	}
	if v := getenv("VILLAPRO_ALLOWED_CIDRS", ""); v != "" {
		cfg.AllowedCIDRS = splitAndTrim(v)
	}
	cfg.TrustProxy = mustBool("VILLAPRO_TRUST_PROXY", cfg.TrustProxy)

	cfg.LoginBurst = getenvInt("VILLAPRO_LOGIN_BURST", cfg.LoginBurst)
	cfg.LoginRefillPerMin = getenvInt("VILLAPRO_LOGIN_REFILL_PER_MIN", cfg.LoginRefillPerMin)
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
