package app

import (
	"github.com/stable/endpoints/internal/config"
	"github.com/stable/endpoints/pkg/constants"
	"github.com/stable/endpoints/pkg/logging"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// ConfigFile is the file passed with --config, or the one found on
	// the search path after loading.
	ConfigFile string

	// BaseURL is the address the registry targets
	BaseURL string

	// Logging configuration
	LogLevel      string
	LogFormat     string
	LogOutput     string
	LogTimeFormat string
	LogCaller     string // "true", "false", or empty to follow the level
	LogFields     map[string]any
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables
//  3. .env.local, then .env
//  4. Config file (configFile, or .endpoints.yaml in $HOME or the working directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	config.LoadEnvFiles(config.DefaultEnvFiles...)

	v, err := config.New(configFile)
	if err != nil {
		return nil, err
	}

	return &Config{
		ConfigFile:    v.ConfigFileUsed(),
		BaseURL:       v.GetString(constants.ConfigKeyBaseURL),
		LogLevel:      config.GetString(v, constants.EnvLogLevel),
		LogFormat:     valueOrDefault(config.GetString(v, constants.EnvLogFormat), "auto"),
		LogOutput:     valueOrDefault(config.GetString(v, constants.EnvLogOutput), "stderr"),
		LogTimeFormat: config.GetString(v, constants.EnvLogTimeFormat),
		LogCaller:     config.GetString(v, constants.EnvLogCaller),
		LogFields:     logging.ParseFields(config.GetString(v, constants.EnvLogFields)),
	}, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so flag values take
// precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

func valueOrDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
