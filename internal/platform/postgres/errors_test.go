package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/roster-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "Nil Passes Through",
			err:      nil,
			expected: nil,
		},
		{
			name:     "No Rows Maps To Not Found",
			err:      pgx.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "Wrapped No Rows Maps To Not Found",
			err:      fmt.Errorf("scan: %w", pgx.ErrNoRows),
			expected: store.ErrNotFound,
		},
		{
			name: "Username Unique Violation",
			err: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "users_username_key",
			},
			expected: store.ErrUsernameExists,
		},
		{
			name: "Email Unique Violation",
			err: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "users_email_key",
			},
			expected: store.ErrEmailExists,
		},
		{
			name: "Unknown Constraint Maps To Generic Duplicate",
			err: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "users_pkey",
			},
			expected: store.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)
			if tc.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.True(t, errors.Is(mapped, tc.expected),
				"expected %v to map to %v", mapped, tc.expected)
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	// Errors with no specific mapping must come back unchanged so callers
	// can still identify them.
	original := errors.New("connection reset by peer")
	require.Same(t, original, MapError(original))

	// Non-unique-violation pg errors are not remapped either.
	pgErr := &pgconn.PgError{Code: "57014"} // query_canceled
	require.Same(t, error(pgErr), MapError(pgErr))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
