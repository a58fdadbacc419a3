// Package cli consolidates the initialization shared by the tally
// subcommands: logging, .env loading, config validation, and opening the
// store.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"tally/internal/config"
	"tally/internal/kv"
	applog "tally/internal/log"
	"tally/internal/store"
)

// SetupLogger initializes structured logging and sets it as the default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}

// OpenStore builds the configured kv backend, wraps it in the record store,
// and loads the persisted collection. Exits the process on failure.
// The returned cleanup closes the backend.
func OpenStore(ctx context.Context, logger *applog.Logger, cfg *config.Config) (*store.Store, func()) {
	backend, err := kv.Open(kv.Config{
		Type:         kv.BackendType(cfg.Backend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	}, logger.Logger)
	if err != nil {
		logger.Error("Failed to open storage backend",
			applog.FieldError, err.Error(), "backend", cfg.Backend)
		os.Exit(1)
	}

	st := store.New(backend, logger)
	if err := st.Load(ctx); err != nil {
		backend.Close()
		logger.Error("Failed to load records", applog.FieldError, err.Error())
		os.Exit(1)
	}

	cleanup := func() {
		if err := backend.Close(); err != nil {
			logger.Warn("Failed to close storage backend", applog.FieldError, err.Error())
		}
	}
	return st, cleanup
}
