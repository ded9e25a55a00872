package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kestrelhq/roster-api/internal/config"
	"github.com/kestrelhq/roster-api/internal/store"
)

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 5 * time.Second

// createUsersTable is executed once after the pool comes up. It is
// idempotent, so a restart against an existing database is a no-op.
const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(100) UNIQUE NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// DB wraps a pgx connection pool and hands out scoped connections with a
// bounded acquisition timeout. A DB with a nil pool is a valid value: every
// Acquire fails with store.ErrUnavailable, which lets the process keep
// serving requests after a failed initialization instead of crashing.
type DB struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// Connect establishes the connection pool from the database configuration,
// verifies connectivity, and ensures the users table exists.
// Returns the ready pool, or an error if any step fails; the caller decides
// whether a failure is fatal.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Credentials supplied separately override whatever the URL carries.
	if cfg.User != "" {
		poolCfg.ConnConfig.User = cfg.User
	}
	if cfg.Password != "" {
		poolCfg.ConnConfig.Password = cfg.Password
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnIdleTime = cfg.IdleTimeout
	poolCfg.MaxConnLifetime = cfg.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createUsersTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	logger.Info("database connection established",
		"max_conns", cfg.MaxConns,
		"acquire_timeout", cfg.AcquireTimeout)

	return &DB{pool: pool, acquireTimeout: cfg.AcquireTimeout}, nil
}

// Unavailable returns a DB whose every acquisition fails with
// store.ErrUnavailable. Used when initialization fails at startup.
func Unavailable() *DB {
	return &DB{}
}

// Acquire borrows a connection from the pool, blocking up to the configured
// acquisition timeout. The caller must Release the connection on every exit
// path. Returns store.ErrUnavailable when no pool exists and
// store.ErrPoolExhausted when the wait for a free connection times out.
func (db *DB) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	if db.pool == nil {
		return nil, store.ErrUnavailable
	}

	acquireCtx, cancel := context.WithTimeout(ctx, db.acquireTimeout)
	defer cancel()

	conn, err := db.pool.Acquire(acquireCtx)
	if err != nil {
		stat := db.pool.Stat()
		saturated := stat.AcquiredConns() >= stat.MaxConns()
		return nil, classifyAcquireError(err, ctx.Err(), saturated, db.acquireTimeout)
	}

	return conn, nil
}

// classifyAcquireError maps a failed pool acquisition onto the store error
// taxonomy. Exhaustion is reported only when the wait timed out with every
// connection checked out; a timeout against an unsaturated pool means the
// database itself is slow or unreachable, and the caller's own cancellation
// is never exhaustion.
func classifyAcquireError(err, callerErr error, saturated bool, timeout time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) && callerErr == nil && saturated {
		return fmt.Errorf("%w: no connection free within %s", store.ErrPoolExhausted, timeout)
	}
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}

// ServerVersion reports the database server's version string using a
// borrowed connection. It touches no application tables, so it works even
// when the users table is absent.
func (db *DB) ServerVersion(ctx context.Context) (string, error) {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	var version string
	if err := conn.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", fmt.Errorf("failed to query server version: %w", err)
	}

	return version, nil
}

// Close releases the underlying pool. Safe to call on an unavailable DB.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}
