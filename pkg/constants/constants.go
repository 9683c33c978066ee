// Package constants provides shared constants used throughout the endpoints
// codebase. This includes the default base address, environment variable
// names and configuration file locations.
package constants

// Base address constants
const (
	// DefaultBaseURL is the backend the registry targets when nothing else is configured
	DefaultBaseURL = "http://127.0.0.1:8787"

	// SampleIdentifier is substituted into parameterized endpoints when
	// checking that they render a valid URL
	SampleIdentifier = "00000000-0000-0000-0000-000000000000"
)

// Environment variable names
const (
	// EnvBaseURL overrides the base address used by the CLI
	EnvBaseURL = "ENDPOINTS_BASE_URL"

	// EnvLogLevel sets the minimum log level
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogFormat sets the log output format (json, console, auto)
	EnvLogFormat = "LOG_FORMAT"

	// EnvLogOutput sets the log destination (stderr, stdout, discard, or a file path)
	EnvLogOutput = "LOG_OUTPUT"

	// EnvLogTimeFormat sets the console timestamp layout (kitchen, rfc3339, unix, ...)
	EnvLogTimeFormat = "LOG_TIME_FORMAT"

	// EnvLogCaller turns file:line annotations on or off (true, false)
	EnvLogCaller = "LOG_CALLER"

	// EnvLogFields adds comma-separated key=value fields to every log line
	EnvLogFields = "LOG_FIELDS"
)

// Configuration file constants
const (
	// ConfigFileName is the config file name searched in $HOME and the working directory
	ConfigFileName = ".endpoints"

	// ConfigFileType is the format of the config file
	ConfigFileType = "yaml"

	// ConfigKeyBaseURL is the config file key holding the base address
	ConfigKeyBaseURL = "base_url"
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
