package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", c.APIBaseURL)
	assert.Equal(t, "v1", c.APIVersion)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, StoreMemory, c.CredentialStore)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.MetricsAddr)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_base_url":     "https://json.example",
		"credential_store": "sqlite",
		"log_level":        "warn",
		"request_timeout":  "10s",
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WEVRAA_LOG_LEVEL=debug\nWEVRAA_API_VERSION=v2\n"), 0o600))
	t.Setenv("WEVRAA_API_VERSION", "v3")

	cfg, err := LoadConfig([]string{"-c", path, "-t", "5"})
	require.NoError(t, err)

	assert.Equal(t, "https://json.example", cfg.APIBaseURL, "json over defaults")
	assert.Equal(t, StoreSQLite, cfg.CredentialStore)
	assert.Equal(t, "debug", cfg.LogLevel, ".env over json")
	assert.Equal(t, "v3", cfg.APIVersion, "process env over .env")
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout, "flags over json")
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadConfig([]string{"-s", "etcd"})
	require.ErrorContains(t, err, `unknown credential store "etcd"`)

	_, err = LoadConfig([]string{"-t", "0"})
	require.ErrorContains(t, err, "request timeout must be positive")

	_, err = LoadConfig([]string{"-c", "/does/not/exist.json"})
	require.ErrorContains(t, err, "read config file")
}
