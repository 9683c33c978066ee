package endpoints

import (
	"github.com/stable/endpoints/pkg/constants"
)

// Option is a function that configures a Registry before it is built
type Option func(*config) error

// config holds the values New builds the registry from.
type config struct {
	baseURL string
}

func defaultConfig() *config {
	return &config{
		baseURL: constants.DefaultBaseURL,
	}
}

// WithBaseURL sets the scheme+host+port prefix shared by every endpoint.
// Trailing slashes are dropped; the address must be an absolute URL without
// query or fragment.
func WithBaseURL(baseURL string) Option {
	return func(c *config) error {
		c.baseURL = baseURL
		return nil
	}
}
