package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Session  SessionConfig  `mapstructure:"session" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// SessionConfig contains settings for the in-memory session registry and
// the scheduling randomness source.
type SessionConfig struct {
	// TTL is how long a session may live before the registry sweeper
	// evicts it. Zero disables eviction entirely, restoring unbounded
	// session lifetime.
	TTL time.Duration `mapstructure:"ttl" validate:"gte=0"`

	// SweepInterval is how often the registry sweeper scans for expired
	// sessions. Only meaningful when TTL is non-zero.
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gte=0"`

	// RandomSeed seeds the random-strategy sampler. Zero selects a
	// time-based seed; any other value makes sampling reproducible.
	RandomSeed int64 `mapstructure:"random_seed"`
}
