package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kestrelhq/roster-api/internal/domain"
	"github.com/kestrelhq/roster-api/internal/store"
)

// Statements read generated and updated values back with RETURNING rather
// than issuing a second query. This saves a round-trip and closes the race
// where a concurrent write could be read back instead of our own.
const (
	createUserSQL = `INSERT INTO users (username, email) VALUES ($1, $2) RETURNING id, created_at`
	getUserSQL    = `SELECT id, username, email, created_at FROM users WHERE id = $1`
	listUsersSQL  = `SELECT id, username, email, created_at FROM users ORDER BY id`
	updateUserSQL = `UPDATE users SET username = $1, email = $2 WHERE id = $3
		RETURNING id, username, email, created_at`
	deleteUserSQL = `DELETE FROM users WHERE id = $1`
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db *DB
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. The pool is initialized and owned by the caller.
func NewPostgresUserStore(db *DB) *PostgresUserStore {
	return &PostgresUserStore{
		db: db,
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	err = conn.QueryRow(ctx, createUserSQL, user.Username, user.Email).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: user %q", store.ErrNoRowReturned, user.Username)
		}
		return MapError(err)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var user domain.User
	err = conn.QueryRow(ctx, getUserSQL, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	return &user, nil
}

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, MapError(err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(
	ctx context.Context,
	id int64,
	username, email string,
) (*domain.User, error) {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var user domain.User
	err = conn.QueryRow(ctx, updateUserSQL, username, email, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	return &user, nil
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, deleteUserSQL, id)
	if err != nil {
		return MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrUserNotFound
	}

	return nil
}
