// Package app provides the application context and dependency management
// for the endpoints CLI: configuration, logging and the lazily built
// registry live here and are handed to commands through appcontext.Interface.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/stable/endpoints"
	"github.com/stable/endpoints/internal/appcontext"
)

// App represents the endpoints application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	mu       sync.RWMutex
	registry *endpoints.Registry
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
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

// Registry returns the registry for the configured base address, creating
// it lazily. Only one instance is created per configuration.
func (a *App) Registry() (*endpoints.Registry, error) {
	a.mu.RLock()
	if a.registry != nil {
		reg := a.registry
		a.mu.RUnlock()
		return reg, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.registry != nil {
		return a.registry, nil
	}

	reg, err := endpoints.New(endpoints.WithBaseURL(a.config.BaseURL))
	if err != nil {
		return nil, err
	}

	a.logger.Debug().Str("base_url", reg.BaseURL()).Msg("Endpoint registry initialized")
	a.registry = reg
	return reg, nil
}

// resetRegistry drops the cached registry after the base address changes.
func (a *App) resetRegistry() {
	a.mu.Lock()
	a.registry = nil
	a.mu.Unlock()
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithRegistry sets a prebuilt registry (useful for testing).
func WithRegistry(reg *endpoints.Registry) Option {
	return func(a *App) error {
		a.registry = reg
		return nil
	}
}
