package config

import (
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// LogLevel maps the configured level name to a pterm level. Unknown names
// fall back to warn.
func (c *Config) LogLevel() pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "error":
		return pterm.LogLevelError
	case "disabled", "off":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelWarn
	}
}

// NewLogger builds the diagnostic logger writing to w.
func (c *Config) NewLogger(w io.Writer) *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(c.LogLevel()).WithWriter(w)
}
