// Package config resolves process configuration for cmd/kwokmatch from
// command-line flags, falling back to environment variables for anything
// left unset on the command line.
package config

import (
	"flag"
	"os"
)

// Config holds everything cmd/kwokmatch's serve subcommand needs.
type Config struct {
	Addr           string // HTTP listen address, e.g. ":8080"
	LogLevel       string // one of internal/log's Level* constants
	DatabaseDSN    string // empty means internal/store.MemStore
	AllowedOrigins string // comma-separated, empty means "*"
}

// Load parses the given flag.FlagSet's arguments (main passes a fresh "serve"
// FlagSet and os.Args[2:]), applying environment-variable fallbacks for any
// flag left at its zero value.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Addr, "addr", "", "HTTP listen address (default :8080, or LISTEN_ADDR)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level: debug|info|warn|error (default info, or LOG_LEVEL)")
	fs.StringVar(&cfg.DatabaseDSN, "db-dsn", "", "Postgres DSN (default empty: in-memory store, or DATABASE_URL)")
	fs.StringVar(&cfg.AllowedOrigins, "allowed-origins", "", "comma-separated CORS origins (default *, or ALLOWED_ORIGINS)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Addr == "" {
		cfg.Addr = getEnvOrDefault("LISTEN_ADDR", ":8080")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = os.Getenv("DATABASE_URL")
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")
	}

	return cfg, nil
}

// getEnvOrDefault returns the env var value or a safe default for non-secret
// settings.
func getEnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
