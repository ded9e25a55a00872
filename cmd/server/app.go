package main

import (
	"context"
	"log/slog"

	"github.com/kestrelhq/roster-api/internal/config"
	"github.com/kestrelhq/roster-api/internal/platform/postgres"
	"github.com/kestrelhq/roster-api/internal/store"
)

// application holds the dependencies shared across the server's handlers.
// Everything is constructed once at startup and injected; there is no
// package-level mutable state.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	db        *postgres.DB
	userStore store.UserStore
}

// newApplication wires the application's dependencies.
// A failed pool initialization is logged and the process keeps serving:
// every storage-backed request then fails with a connectivity error until
// the service is restarted against a reachable database.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) *application {
	db, err := postgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("database initialization failed, storage will be unavailable", "error", err)
		db = postgres.Unavailable()
	}

	return &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		userStore: postgres.NewPostgresUserStore(db),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	app.db.Close()
}
