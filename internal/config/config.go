// Package config provides centralized configuration management for the
// ingest pipeline. It loads configuration from environment variables
// with sensible defaults and validates all settings on startup to fail
// fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Ingest   IngestConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds destination store settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`
}

// IngestConfig holds batch input settings.
type IngestConfig struct {
	// DataDir is scanned for *.csv files when no files are named on the
	// command line (default: data)
	DataDir string `env:"INGEST_DATA_DIR" default:"data"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`

	// ErrorFile is the append-only error log recording fatal run
	// failures (default: logs/ingest_errors.log)
	ErrorFile string `env:"LOG_ERROR_FILE" default:"logs/ingest_errors.log"`
}
