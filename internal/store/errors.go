package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Absence is a normal result, never an unexpected failure.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrUnavailable is returned when the store has no usable connection
	// pool, either because initialization failed at startup or because the
	// database cannot be reached.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrPoolExhausted is returned when acquiring a pooled connection timed
	// out because every connection was checked out.
	ErrPoolExhausted = errors.New("connection pool exhausted")

	// ErrNoRowReturned is returned when an insert that requested its
	// generated values back unexpectedly produced no row. This is a fatal
	// condition, not a not-found case.
	ErrNoRowReturned = errors.New("insert did not return a row")

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrUsernameExists indicates that a user with the given username already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsConnectivityError checks if the error indicates that the database could
// not be used at all, as opposed to a per-row outcome.
func IsConnectivityError(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrPoolExhausted)
}
