// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. WEVRAA_* environment variables; a .env file in the working directory
//     fills in variables the process environment does not set.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.wevraa.in",
//	  "api_version": "v1",
//	  "request_timeout": "30s",
//	  "credential_store": "sqlite",
//	  "sqlite_path": "/var/lib/wevraa/admin.db",
//	  "redis_addr": "localhost:6379",
//	  "redis_db": 0,
//	  "credential_key": "",
//	  "log_level": "info",
//	  "metrics_addr": ":9100"
//	}
package config
