// Package application provides the application interface for crosscheck
// commands.
//
// The Application interface defines the contract between the application
// layer and command implementations, enabling dependency injection and
// testability. Commands accept this interface rather than the concrete App
// type.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/records"
)

// Application provides the application context that commands need.
// The App struct from cmd/crosscheck/app implements this interface.
type Application interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// Tolerances returns the run's comparison tolerances.
	Tolerances() compare.Tolerances

	// Workers returns the configured classification worker count.
	Workers() int

	// DuplicatePolicy returns the configured duplicate-key resolution.
	DuplicatePolicy() records.DuplicatePolicy

	// SchemaFile returns the path of the schema override file, or "".
	SchemaFile() string

	// OutDir returns the report output directory.
	OutDir() string

	// WarningLimit returns the markdown report's warning cap.
	WarningLimit() int

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash of the build.
	Commit() string

	// Date returns the build date.
	Date() string
}
