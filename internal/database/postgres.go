// File: internal/database/postgres.go
package database

import (
	"context"

	"cadastro-api/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpoolNewWithConfig is swappable in tests.
var pgxpoolNewWithConfig = pgxpool.NewWithConfig

// NewPgxPool builds a bounded pgx pool from the loaded configuration. The pool
// caps concurrently open connections; acquisition beyond the cap waits on the
// request context.
func NewPgxPool(ctx context.Context, cfg *config.Config) (DB, error) {
	pc, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	pc.MaxConns = cfg.DBMaxConns
	pc.MaxConnIdleTime = cfg.DBMaxConnIdle
	pc.ConnConfig.ConnectTimeout = cfg.DBConnectTimeout

	pool, err := pgxpoolNewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
