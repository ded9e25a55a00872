// Command server runs the roster HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/kestrelhq/roster-api/internal/config"
	"github.com/kestrelhq/roster-api/internal/platform/logger"
)

func main() {
	// A .env file is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app := newApplication(context.Background(), cfg, log)

	if err := app.startHTTPServer(context.Background()); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
