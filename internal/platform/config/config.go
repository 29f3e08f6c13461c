package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	JWTSigningKey string
	TokenTTLHours int

	SeedAdminUsername string
	SeedAdminPassword string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "warden"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	ttl := envInt("TOKEN_TTL_HOURS", 24)

	seedUser := strings.TrimSpace(os.Getenv("SEED_ADMIN_USERNAME"))
	if seedUser == "" {
		seedUser = "admin"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		JWTSigningKey: os.Getenv("JWT_SIGNING_KEY"),
		TokenTTLHours: ttl,

		SeedAdminUsername: seedUser,
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
