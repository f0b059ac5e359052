package config

import (
	"strings"
	"time"
)

// BackendConfig contains HRMS REST backend configuration.
type BackendConfig struct {
	// BaseURL is the origin of the HRMS backend every request is issued
	// against (e.g., "http://localhost:9090").
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:9090"`

	// RequestTimeout bounds each backend call. There is no retry; a failed
	// call is reported to the view that issued it.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.BaseURL == "" {
		b.BaseURL = "http://localhost:9090"
	}
	if b.RequestTimeout <= 0 {
		b.RequestTimeout = 15 * time.Second
	}
}
