package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	appName         = "cma_backend"
	maxConns        = 16
	maxConnIdleTime = 5 * time.Minute
)

// NewPgxPool creates the PostgreSQL connection pool backing the condominium
// repositories and verifies the connection before returning it.
func NewPgxPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	// Identify the app in pg_stat_activity and keep the pool bounded; the
	// handlers are short-lived request workers, not long-running consumers.
	config.ConnConfig.RuntimeParams["application_name"] = appName
	config.MaxConns = maxConns
	config.MaxConnIdleTime = maxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Connected to PostgreSQL", slog.String("application_name", appName))
	return pool, nil
}
