package config

import (
	"fmt"
	"time"
)

// Credential store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds runtime settings for the admin console.
type Config struct {
	APIBaseURL     string
	APIVersion     string
	RequestTimeout time.Duration

	// CredentialStore selects where the session lives: memory, sqlite or redis.
	CredentialStore string
	SQLitePath      string
	RedisAddr       string
	RedisDB         int
	// CredentialKey, when set, encrypts stored credentials at rest.
	CredentialKey string

	LogLevel string
	// MetricsAddr enables a Prometheus /metrics listener when non-empty.
	MetricsAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.APIVersion = "v1"
	c.RequestTimeout = 30 * time.Second
	c.CredentialStore = StoreMemory
	c.SQLitePath = "wevraa-admin.db"
	c.RedisAddr = "localhost:6379"
	c.RedisDB = 0
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// the environment (including a .env file in the working directory), then
// command-line flags. Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.CredentialStore {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("unknown credential store %q (want memory, sqlite or redis)", c.CredentialStore)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}
