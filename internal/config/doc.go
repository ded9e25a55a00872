// Package config loads and validates application configuration from the
// environment. All settings live under one unified schema so the server,
// pool, and diagnostics share a single source of connection options.
package config
