package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/flagx"
)

var knownFlags = []string{"-u", "-v", "-t", "-s", "-db", "-redis", "-l", "-m"}

// parseFlags populates Config fields from command-line flags:
//
//	-u string   API base URL
//	-v string   API version segment
//	-t int      request timeout in seconds
//	-s string   credential store: memory, sqlite or redis
//	-db string  SQLite file for the sqlite store
//	-redis string  Redis address for the redis store
//	-l string   log level
//	-m string   address for the /metrics listener
//
// Only these flags are looked at; see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.APIVersion, "v", cfg.APIVersion, "API version")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CredentialStore, "s", cfg.CredentialStore, "credential store (memory, sqlite, redis)")
	fs.StringVar(&cfg.SQLitePath, "db", cfg.SQLitePath, "SQLite file for the sqlite credential store")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for the redis credential store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "listen address for /metrics")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
