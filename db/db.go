// Package db owns database pool construction and schema migrations.
package db

import (
	"context"
	"fmt"

	"github.com/gruhahomes/gruha-backend/config"
	"github.com/gruhahomes/gruha-backend/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a pgx connection pool from the database configuration.
// The pool is acquired once at process start and must be closed at shutdown.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	log := logger.GetLogger()

	poolConfig, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConnections)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Infow("Database pool established",
		"url", logger.MaskConnectionString(cfg.URL()),
		"max_conns", cfg.MaxConnections,
	)

	return pool, nil
}
