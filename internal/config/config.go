package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/cashbook/internal/constants"
)

type Config struct {
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: constants.DefaultLogLevel},
	}
}

// AppDataDir is where the optional config.yaml lives.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

// DefaultConfigPath is the config file used when no --config flag is given.
func DefaultConfigPath() (string, error) {
	dir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
