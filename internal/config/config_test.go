package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cadastro")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "3333", cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, int32(20), cfg.DBMaxConns)
	require.Equal(t, 2*time.Second, cfg.DBConnectTimeout)
	require.Equal(t, 30*time.Second, cfg.DBMaxConnIdle)
	require.Equal(t, 2*time.Second, cfg.DBAcquireTimeout)
	require.Equal(t, 0, cfg.RedisDB)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("DB_MAX_CONNS", "5")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "pw")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, int32(5), cfg.DBMaxConns)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "pw", cfg.RedisPassword)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("REDIS_ADDR", "")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/cadastro")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	_, err = Load()
	require.NoError(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	setRequired(t)

	t.Setenv("REDIS_DB", "abc")
	_, err := Load()
	require.Error(t, err)
	t.Setenv("REDIS_DB", "0")

	t.Setenv("TOKEN_TTL", "soon")
	_, err = Load()
	require.Error(t, err)
	t.Setenv("TOKEN_TTL", "24h")

	t.Setenv("DB_MAX_CONNS", "0")
	_, err = Load()
	require.Error(t, err)
	t.Setenv("DB_MAX_CONNS", "20")

	t.Setenv("DB_CONNECT_TIMEOUT", "fast")
	_, err = Load()
	require.Error(t, err)
	t.Setenv("DB_CONNECT_TIMEOUT", "2s")

	t.Setenv("DB_ACQUIRE_TIMEOUT", "0s")
	_, err = Load()
	require.Error(t, err)
}
