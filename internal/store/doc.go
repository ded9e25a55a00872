// Package store defines the persistence contracts and the error taxonomy
// shared by all storage implementations. Callers classify failures with
// errors.Is against the sentinel errors declared here rather than by
// inspecting driver-specific error values.
package store
