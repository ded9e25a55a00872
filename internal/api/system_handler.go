package api

import (
	"context"
	"log/slog"
	"net/http"
)

// VersionReporter reports the database server's version string.
// Implemented by the postgres pool.
type VersionReporter interface {
	ServerVersion(ctx context.Context) (string, error)
}

// SystemHandler handles diagnostic requests about the backing database.
type SystemHandler struct {
	versions VersionReporter
}

// NewSystemHandler creates a new SystemHandler with the given dependencies.
func NewSystemHandler(versions VersionReporter) *SystemHandler {
	return &SystemHandler{versions: versions}
}

// DBVersion handles GET /db-version.
// Responds with the server version as plain text. Unlike the CRUD endpoints
// this one deliberately returns the raw error text on failure; it exists to
// diagnose connectivity and hiding the cause would defeat it.
func (h *SystemHandler) DBVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.versions.ServerVersion(r.Context())
	if err != nil {
		slog.Error("db-version check failed", "error", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write([]byte("Error: " + err.Error())); werr != nil {
			slog.Error("failed to write db-version error response", "error", werr)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version)); err != nil {
		slog.Error("failed to write db-version response", "error", err)
	}
}
