package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	userservice "warden/contexts/identity-access/user-service"
	postgresadapter "warden/contexts/identity-access/user-service/adapters/postgres"
	"warden/contexts/identity-access/user-service/domain/services"
	"warden/internal/platform/config"
	"warden/internal/platform/db"
	"warden/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.JWTSigningKey) == "" {
		return nil, errors.New("JWT_SIGNING_KEY is required")
	}
	signingKey := []byte(cfg.JWTSigningKey)
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour

	// No DSN means the in-memory directory: development and test wiring.
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Info("no postgres dsn configured, using in-memory directory",
			"event", "bootstrap_memory_directory",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		module := userservice.NewInMemoryModule(logger, signingKey)
		server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
		return &APIApp{server: server, logger: logger}, nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := postgresadapter.NewRepository(pg.DB, logger)
	if err := repo.Migrate(ctx); err != nil {
		_ = pg.Close()
		return nil, err
	}
	if cfg.SeedAdminPassword != "" {
		hash := services.HashPassword(cfg.SeedAdminPassword)
		if err := repo.EnsureSuperAdmin(ctx, cfg.SeedAdminUsername, hash); err != nil {
			_ = pg.Close()
			return nil, err
		}
	}

	module := userservice.NewModule(userservice.Dependencies{
		Directory:  repo,
		Clock:      postgresadapter.SystemClock{},
		SigningKey: signingKey,
		TokenTTL:   tokenTTL,
		Logger:     logger,
	})

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
