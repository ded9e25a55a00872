package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/roster-api/internal/domain"
)

func requestWithPathParam(t *testing.T, key, value string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/users/"+value, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		expectedID int64
		wantErr    bool
	}{
		{"Valid", "42", 42, false},
		{"Large", "9007199254740993", 9007199254740993, false},
		{"Non-Numeric", "abc", 0, true},
		{"Negative", "-5", 0, true},
		{"Zero", "0", 0, true},
		{"Empty", "", 0, true},
		{"Float", "1.5", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := requestWithPathParam(t, "id", tc.value)

			id, err := getPathID(req, "id")
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}
