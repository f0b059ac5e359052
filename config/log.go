package config

import (
	"fmt"
	"strings"
)

// LogFormat selects the slog handler used for application logging.
type LogFormat string

const (
	// LogFormatJSON emits one JSON object per log line.
	LogFormatJSON LogFormat = "json"
	// LogFormatText emits human-readable key=value lines.
	LogFormatText LogFormat = "text"
)

// UnmarshalText implements encoding.TextUnmarshaler for LogFormat.
func (f *LogFormat) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "json", "text":
		*f = LogFormat(v)
		return nil
	default:
		return fmt.Errorf("invalid LogFormat: %q (valid options: json, text)", v)
	}
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum slog level: debug, info, warn, or error.
	Level string `env:"LEVEL" envDefault:"info"`

	// Format selects the handler output format.
	Format LogFormat `env:"FORMAT" envDefault:"json"`
}
