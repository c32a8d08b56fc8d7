package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// File, when set, receives a JSON copy of every event.
	File *FileConfig
}

// FileConfig enables a size-rotated log file next to stderr output.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a zerolog logger writing to stderr.
// The returned cleanup closes the log file, if one was opened.
func New(cfg Config) (zerolog.Logger, func(), error) {
	var output io.Writer = os.Stderr
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	cleanup := func() {}
	if cfg.File != nil && cfg.File.Path != "" {
		rotator, err := NewRotatingFile(cfg.File.Path, cfg.File.MaxSizeMB, cfg.File.MaxBackups)
		if err != nil {
			return zerolog.Nop(), cleanup, err
		}
		output = zerolog.MultiLevelWriter(output, rotator)
		cleanup = func() { _ = rotator.Close() }
	}

	logger := zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, cleanup, nil
}

// NewFromEnv creates a stderr logger based on environment variables
// THEMEROOT_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// THEMEROOT_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("THEMEROOT_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("THEMEROOT_LOG_FORMAT"); format == "json" || format == "console" {
		cfg.Format = format
	}

	logger, _, _ := New(cfg)
	return logger
}
