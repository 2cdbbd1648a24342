package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment. The storage
// backend is decided here, once, at startup: a Redis address selects the
// shared external backend, its absence selects the in-process map.
type Config struct {
	// Port is the HTTP listen port
	Port string `env:"PORT" envDefault:"8080"`

	// RedisAddr enables the Redis backend when set (host:port)
	RedisAddr string `env:"REDIS_ADDR"`

	// RedisPassword is the optional Redis auth password
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis database number
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// RedisTimeout bounds the startup connectivity probe
	RedisTimeout time.Duration `env:"REDIS_TIMEOUT" envDefault:"5s"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; the real environment still applies.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// RedisConfigured reports whether the external Redis backend was selected
func (c *Config) RedisConfigured() bool {
	return c.RedisAddr != ""
}
