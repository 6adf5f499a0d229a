package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	if cfg.Defaults.Currency != "INR" {
		t.Errorf("default currency = %q, want INR", cfg.Defaults.Currency)
	}
	if cfg.LogLevel() != pterm.LogLevelWarn {
		t.Errorf("default log level = %v, want warn", cfg.LogLevel())
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[string]pterm.LogLevel{
		"debug":   pterm.LogLevelDebug,
		" INFO ":  pterm.LogLevelInfo,
		"error":   pterm.LogLevelError,
		"off":     pterm.LogLevelDisabled,
		"verbose": pterm.LogLevelWarn,
	}
	for in, want := range tests {
		cfg := &Config{Log: LogConfig{Level: in}}
		if got := cfg.LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Log: LogConfig{Level: "warn"}}
	logger := cfg.NewLogger(&buf)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message written at warn level: %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn message missing from output: %q", buf.String())
	}
}
