// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Default token lifetime: 36000 seconds (10 hours).
const defaultTokenExpiry = 36000 * time.Second

// Config holds the process-wide configuration. It is loaded once at startup
// and read-only afterwards.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// JWTSecret signs and verifies bearer tokens. Its absence is a fatal
	// configuration error, never a per-request one.
	JWTSecret string

	// TokenExpiry is the fixed validity window of issued tokens.
	TokenExpiry time.Duration

	// CacheTTL bounds how long a user record may live in Redis.
	CacheTTL time.Duration
}

// ErrMissingJWTSecret is returned when JWT_SECRET is not set.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Load reads configuration from a .env file (if present) and the environment.
// DB and Redis connection settings are read directly by their platform
// packages; this struct carries only what is injected through constructors.
func Load() (*Config, error) {
	// .env is a local development convenience; real env vars win
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	cfg := &Config{
		Addr:        ":8080",
		JWTSecret:   secret,
		TokenExpiry: defaultTokenExpiry,
		CacheTTL:    5 * time.Minute,
	}
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if v := os.Getenv("TOKEN_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("TOKEN_EXPIRY must be a duration like 10h or 36000s")
		}
		cfg.TokenExpiry = d
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("CACHE_TTL must be a duration like 5m")
		}
		cfg.CacheTTL = d
	}
	return cfg, nil
}
