// Package database holds the Postgres pool behind the view-state store and
// the account table, plus their migrations.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "proposedesk"

// Option tunes the pool.
type Option func(*pgxpool.Config)

// WithMaxConns caps the pool; zero keeps the default.
func WithMaxConns(n int32) Option {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = n
			c.MinConns = min(c.MinConns, n)
		}
	}
}

// DB is the connection pool of the view-state store.
type DB struct {
	pool *pgxpool.Pool
}

// Pool returns the underlying connection pool.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

func poolConfig(databaseURL string, opts ...Option) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.ConnConfig.RuntimeParams["application_name"] = applicationName
	for _, opt := range opts {
		opt(config)
	}
	return config, nil
}

// New opens the pool and pings it.
func New(ctx context.Context, databaseURL string, opts ...Option) (*DB, error) {
	config, err := poolConfig(databaseURL, opts...)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("view-state store connected",
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
		"max_conns", config.MaxConns,
	)

	return &DB{pool: pool}, nil
}

// Ping is the /healthz check of the view-state store.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping view-state store: %w", err)
	}
	return nil
}

// Close closes the pool.
func (db *DB) Close() {
	db.pool.Close()
	slog.Info("view-state store closed")
}
