package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUsername is returned when a username is missing.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")
)
