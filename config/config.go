package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Session and role-inference configuration
//   - backend.go: HRMS backend API configuration
//   - http.go: HTTP server configuration
//   - session.go: Session store (Redis) configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template hot reloading, etc.)
	// Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Auth holds session lifetime and role-inference settings.
	Auth AuthConfig

	// Backend holds the HRMS REST backend connection settings.
	Backend BackendConfig `envPrefix:"HRMS_"`

	// Session holds the session store connection settings.
	Session SessionConfig `envPrefix:"SESSION_"`

	// HTTP server configuration.
	HTTP HTTPConfig

	// Log holds logging configuration.
	Log LogConfig `envPrefix:"LOG_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.Backend.Sanitize()
	c.Session.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks the NODE_ENV environment variable as a fallback for
// DEV=true, since local tooling commonly sets NODE_ENV=development.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
