package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables recognized by the
// service, e.g. ROSTER_DATABASE_URL for the database.url key.
const envPrefix = "ROSTER"

// Load reads configuration from environment variables, applying defaults
// for every setting that has a sensible one. The database URL has no
// default and must be provided.
// Returns a populated, validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. Declaring every key here also registers it with viper so
	// AutomaticEnv can resolve the matching environment variable.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.url", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_timeout", "10m")
	v.SetDefault("database.max_lifetime", "30m")
	v.SetDefault("database.acquire_timeout", "30s")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
