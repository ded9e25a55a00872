package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kestrelhq/roster-api/internal/domain"
)

// getPathID extracts a user ID from the URL path parameters.
// IDs are positive base-10 integers; anything else is a validation error.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", domain.ErrInvalidID, raw)
	}

	return id, nil
}
