// Package config loads CLI settings from config files, .env files and the
// environment using viper.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/stable/endpoints/pkg/constants"
	pkgerrors "github.com/stable/endpoints/pkg/errors"
)

// DefaultEnvFiles are loaded in order; variables already set are kept.
var DefaultEnvFiles = []string{".env.local", ".env"}

// LoadEnvFiles loads environment variables from .env files. Missing files
// are ignored and existing variables are never overwritten, so earlier files
// win over later ones.
func LoadEnvFiles(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// New returns a viper instance with the base address bound to its
// environment variable and default, and the config file read in.
//
// When configFile is set it must exist. Otherwise .endpoints.yaml is
// searched in $HOME and the working directory, and a missing file is fine.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv(constants.ConfigKeyBaseURL, constants.EnvBaseURL); err != nil {
		return nil, pkgerrors.NewConfigError("env", "bind "+constants.EnvBaseURL, err)
	}
	v.SetDefault(constants.ConfigKeyBaseURL, constants.DefaultBaseURL)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, pkgerrors.NewConfigError("file", "read "+configFile, err)
		}
		return v, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType(constants.ConfigFileType)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, pkgerrors.NewConfigError("file", "read "+constants.ConfigFileName, err)
		}
	}

	return v, nil
}

// GetString returns the viper value for key, falling back to the OS
// environment variable of the same name when viper has nothing.
func GetString(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return os.Getenv(key)
}
