package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/villapro/villapro/internal/config"
	"github.com/villapro/villapro/internal/control"
	"github.com/villapro/villapro/internal/describe"
	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/httpserver"
	"github.com/villapro/villapro/internal/httpserver/deps"
	"github.com/villapro/villapro/internal/logger"
	"github.com/villapro/villapro/internal/redis"
	"github.com/villapro/villapro/internal/remote"
	redisstore "github.com/villapro/villapro/internal/store/redis"
	"github.com/villapro/villapro/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	controller  *control.Controller
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize local storage early - fail fast if unavailable
	loggerClient.Infof("Connecting to local storage at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to local storage: %v", err)
		os.Exit(1)
	}

	store := redisstore.NewStore(redisClient)

	// Environment-provided backend defaults; persisted settings loaded
	// at startup take precedence.
	gw := remote.NewGateway(domain.ConnectionConfig{
		URL:     cfg.SupabaseURL,
		AnonKey: cfg.SupabaseAnonKey,
	}, loggerClient)
	auth := remote.NewAuth(gw, loggerClient)
	catalog := remote.NewCatalog(gw, loggerClient)
	generator := describe.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, loggerClient)

	controller := control.New(gw, auth, catalog, generator, store, loggerClient)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		Controller:        controller,
		RedisClient:       redisClient,
		AllowedHosts:      cfg.AllowedHosts,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
		LoginBurst:        cfg.LoginBurst,
		LoginRefillPerMin: cfg.LoginRefillPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		controller:  controller,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting VillaPro v%s on %s", version.Version, a.cfg.ListenAddr)
	a.logger.Infof("VillaPro %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Restore persisted settings, session and catalog snapshot.
	if err := a.controller.Startup(ctx); err != nil {
		return fmt.Errorf("failed to restore application state: %w", err)
	}
	if a.controller.Configured() {
		a.logger.Info("backend configured",
			logger.Bool("configured", true),
			logger.String("endpoint", a.controller.Endpoint()))
	} else {
		a.logger.Warn("backend not configured yet, waiting for settings",
			logger.Bool("configured", false))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close local storage: %v", err)
		} else {
			a.logger.Info("✅ Local storage closed cleanly")
		}
	}

	a.logger.Info("✅ VillaPro stopped cleanly")
	return nil
}
