// Package config defines service configuration structures and loading hooks.
package config

import (
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// LogFormat selects the log handler: text, json or tint.
	LogFormat string `koanf:"log_format" validate:"oneof=text json tint"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// CatalogPath overrides the embedded catalog when set.
	CatalogPath string `koanf:"catalog_path" validate:"omitempty,file"`

	// DefaultLocale is used when a request names no language.
	DefaultLocale string `koanf:"default_locale" validate:"oneof=ko en"`

	// StoreDriver selects the comparison list backend.
	StoreDriver string `koanf:"store_driver" validate:"oneof=memory sqlite redis"`

	SQLitePath    string `koanf:"sqlite_path" validate:"required_if=StoreDriver sqlite"`
	RedisAddr     string `koanf:"redis_addr" validate:"required_if=StoreDriver redis"`
	RedisDB       int    `koanf:"redis_db" validate:"gte=0"`
	RedisPassword string `koanf:"redis_password"`

	// Reveal window sizes and the delay before a requested batch appears.
	RevealInitial int `koanf:"reveal_initial" validate:"gt=0"`
	RevealBatch   int `koanf:"reveal_batch" validate:"gt=0"`
	RevealDelayMS int `koanf:"reveal_delay_ms" validate:"gte=0"`

	// ActionQueueSize bounds the pending session actions.
	ActionQueueSize int `koanf:"action_queue_size" validate:"gt=0"`

	// SessionTTLMinutes is how long an idle session is kept.
	SessionTTLMinutes int `koanf:"session_ttl_minutes" validate:"gt=0"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":9080",
		DefaultLocale:     "ko",
		StoreDriver:       "memory",
		SQLitePath:        "campus.db",
		RedisAddr:         "localhost:6379",
		RevealInitial:     12,
		RevealBatch:       12,
		RevealDelayMS:     500,
		ActionQueueSize:   1024,
		SessionTTLMinutes: 30,
	}
}

// RevealDelay returns the reveal delay as a duration.
func (c *Config) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMS) * time.Millisecond
}

// SessionTTL returns the idle session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}
