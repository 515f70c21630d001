// Package app provides the application context for the crosscheck CLI:
// configuration loading, logger wiring, and command registration.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/errors"
	"github.com/agentstation/crosscheck/pkg/records"
)

// App represents the crosscheck application with its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Tolerances returns the run's comparison tolerances.
func (a *App) Tolerances() compare.Tolerances {
	return a.config.Tolerances()
}

// Workers returns the configured classification worker count.
func (a *App) Workers() int {
	return a.config.Workers
}

// DuplicatePolicy returns the configured duplicate-key resolution.
func (a *App) DuplicatePolicy() records.DuplicatePolicy {
	return records.DuplicatePolicy(a.config.DuplicatePolicy)
}

// SchemaFile returns the path of the schema override file, or "".
func (a *App) SchemaFile() string {
	return a.config.SchemaFile
}

// OutDir returns the report output directory.
func (a *App) OutDir() string {
	return a.config.OutDir
}

// WarningLimit returns the markdown report's warning cap.
func (a *App) WarningLimit() int {
	return a.config.WarningLimit
}
