package store

import (
	"context"

	"github.com/kestrelhq/roster-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Every operation borrows one scoped connection from the pool and releases
// it on all exit paths before returning.
type UserStore interface {
	// Create saves a new user to the store and populates the ID and
	// CreatedAt fields from the generated row in the same statement.
	// Returns ErrUsernameExists or ErrEmailExists when the corresponding
	// unique constraint rejects the insert, and ErrNoRowReturned if the
	// insert unexpectedly yields no generated row.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// List retrieves all users ordered by ascending ID.
	// An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]domain.User, error)

	// Update changes the username and email of the row matching id and
	// returns the updated row read back in the same statement.
	// Returns ErrUserNotFound if no row matched, and the same duplicate
	// errors as Create when a unique constraint rejects the new values.
	Update(ctx context.Context, id int64, username, email string) (*domain.User, error)

	// Delete removes the user matching id.
	// Returns ErrUserNotFound if no row was removed. Deletion is permanent.
	Delete(ctx context.Context, id int64) error
}
