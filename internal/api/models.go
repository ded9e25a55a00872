package api

// Common request structures. Responses serialize domain.User directly.

// CreateUserRequest defines the payload for the user creation endpoint.
// Both fields are required; a missing field fails validation before the
// store is involved.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
}

// UpdateUserRequest defines the payload for the user update endpoint.
// Fields are deliberately unvalidated and are pointers so an absent field
// is distinguishable from an empty one; an absent field is an internal
// error, the same outcome the NOT NULL constraints would produce if the
// nil were passed through to the statement.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}
