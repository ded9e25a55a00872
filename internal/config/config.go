package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// There is a single entry point for connection options; every component,
// including the diagnostic endpoint, draws from the same pool.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"      validate:"required"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`

	// Pool sizing and lifetimes.
	MaxConns       int32         `mapstructure:"max_conns"       validate:"required,gt=0"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"    validate:"required,gt=0"`
	MaxLifetime    time.Duration `mapstructure:"max_lifetime"    validate:"required,gt=0"`
	AcquireTimeout time.Duration `mapstructure:"acquire_timeout" validate:"required,gt=0"`
}
