// Package api implements the HTTP handlers for the user CRUD endpoints and
// the database diagnostic endpoint. Handlers are pure mappings from request
// shape to status code and body; persistence outcomes arrive as store errors
// and are translated through one deterministic error-to-status policy.
package api
