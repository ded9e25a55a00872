package domain

import (
	"time"
)

// User represents a registered member of the roster.
// ID and CreatedAt are assigned by the database on creation and are
// immutable afterwards; Username and Email are each unique across all
// live records.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a User with the given username and email.
// The ID and CreatedAt fields are left zero; the store populates them
// from the generated row when the user is persisted.
// Returns an error if validation fails.
func NewUser(username, email string) (*User, error) {
	user := &User{
		Username: username,
		Email:    email,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	return nil
}
