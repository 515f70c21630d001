package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/crosscheck/pkg/logging"
)

// NewLogger creates a configured logger. Log level precedence (highest to
// lowest): --log-level flag, -v/--verbose, -q/--quiet, LOG_LEVEL, default
// (info).
func NewLogger(config *Config) zerolog.Logger {
	logConfig := &logging.Config{
		Level:   determineLogLevel(config),
		Format:  config.LogFormat,
		Output:  config.LogOutput,
		NoColor: config.NoColor,
	}
	return logging.NewLoggerFromConfig(logConfig)
}

// determineLogLevel resolves the effective log level.
func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		return config.LogLevel
	}
	if config.Verbose && config.Quiet {
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}
	return "info"
}
