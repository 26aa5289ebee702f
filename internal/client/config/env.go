package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// EnvConfig is the environment DTO. Unset variables stay zero and do not
// override earlier sources.
type EnvConfig struct {
	APIBaseURL      string        `env:"WEVRAA_API_BASE_URL"`
	APIVersion      string        `env:"WEVRAA_API_VERSION"`
	RequestTimeout  time.Duration `env:"WEVRAA_REQUEST_TIMEOUT"`
	CredentialStore string        `env:"WEVRAA_CREDENTIAL_STORE"`
	SQLitePath      string        `env:"WEVRAA_SQLITE_PATH"`
	RedisAddr       string        `env:"WEVRAA_REDIS_ADDR"`
	RedisDB         int           `env:"WEVRAA_REDIS_DB"`
	CredentialKey   string        `env:"WEVRAA_CREDENTIAL_KEY"`
	LogLevel        string        `env:"WEVRAA_LOG_LEVEL"`
	MetricsAddr     string        `env:"WEVRAA_METRICS_ADDR"`
}

// parseEnv overlays cfg with WEVRAA_* variables. Variables from dotenvPath
// are used only where the process environment has no value.
func parseEnv(cfg *Config, dotenvPath string) error {
	return parseEnvWith(cfg, dotenvPath, envconfig.OsLookuper())
}

func parseEnvWith(cfg *Config, dotenvPath string, process envconfig.Lookuper) error {
	lookuper := process
	if dotenvPath != "" {
		vars, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			lookuper = envconfig.MultiLookuper(process, envconfig.MapLookuper(vars))
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read %s: %w", dotenvPath, err)
		}
	}

	var ec EnvConfig
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &ec,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	setString(&cfg.APIBaseURL, ec.APIBaseURL)
	setString(&cfg.APIVersion, ec.APIVersion)
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	setString(&cfg.CredentialStore, ec.CredentialStore)
	setString(&cfg.SQLitePath, ec.SQLitePath)
	setString(&cfg.RedisAddr, ec.RedisAddr)
	if ec.RedisDB != 0 {
		cfg.RedisDB = ec.RedisDB
	}
	setString(&cfg.CredentialKey, ec.CredentialKey)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.MetricsAddr, ec.MetricsAddr)
	return nil
}
