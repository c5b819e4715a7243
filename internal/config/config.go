// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, read once at startup.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	TokenTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Connection pool bounds, matching the store's expectations.
	DBMaxConns       int32
	DBConnectTimeout time.Duration
	DBMaxConnIdle    time.Duration

	// DBAcquireTimeout caps how long one request may wait for a pool slot
	// plus its queries; expiry surfaces as resource exhaustion.
	DBAcquireTimeout time.Duration
}

// Load reads configuration from environment variables. DATABASE_URL, JWT_SECRET
// and REDIS_ADDR are required; there is deliberately no default signing secret.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3333"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}

	var err error
	if cfg.RedisDB, err = getIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = getDurationEnv("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	maxConns, err := getIntEnv("DB_MAX_CONNS", 20)
	if err != nil {
		return nil, err
	}
	if maxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	cfg.DBMaxConns = int32(maxConns)
	if cfg.DBConnectTimeout, err = getDurationEnv("DB_CONNECT_TIMEOUT", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnIdle, err = getDurationEnv("DB_MAX_CONN_IDLE", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.DBAcquireTimeout, err = getDurationEnv("DB_ACQUIRE_TIMEOUT", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.DBAcquireTimeout <= 0 {
		return nil, fmt.Errorf("DB_ACQUIRE_TIMEOUT must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return d, nil
}
