package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/wevraa-admin/internal/flagx"
	"github.com/dmitrijs2005/wevraa-admin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field alone.
type JsonConfig struct {
	APIBaseURL      string          `json:"api_base_url"`
	APIVersion      string          `json:"api_version"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	CredentialStore string          `json:"credential_store"`
	SQLitePath      string          `json:"sqlite_path"`
	RedisAddr       string          `json:"redis_addr"`
	RedisDB         *int            `json:"redis_db"`
	CredentialKey   string          `json:"credential_key"`
	LogLevel        string          `json:"log_level"`
	MetricsAddr     string          `json:"metrics_addr"`
}

// parseJson overlays cfg with the file given by -c or -config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.APIVersion, jc.APIVersion)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.CredentialStore, jc.CredentialStore)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	setString(&cfg.CredentialKey, jc.CredentialKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.MetricsAddr, jc.MetricsAddr)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
