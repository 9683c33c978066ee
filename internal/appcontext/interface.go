// Package appcontext provides the application context interface shared by
// every CLI command, so commands depend on an interface rather than the
// concrete App and can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/stable/endpoints"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Registry returns the endpoint registry for the configured base
	// address, building it on first use.
	Registry() (*endpoints.Registry, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string
}
