package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kestrelhq/roster-api/internal/store"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// MapError maps a database error to the store error taxonomy, wrapping the
// original error to preserve context. Errors without a specific mapping are
// returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %v", mapUniqueViolation(pgErr), err)
	}

	return err
}

// mapUniqueViolation picks the field-specific duplicate sentinel from the
// violated constraint's name. The users table names its unique indexes
// users_username_key and users_email_key.
func mapUniqueViolation(pgErr *pgconn.PgError) error {
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return store.ErrUsernameExists
	case strings.Contains(pgErr.ConstraintName, "email"):
		return store.ErrEmailExists
	default:
		return store.ErrDuplicate
	}
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
