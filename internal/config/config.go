// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers for CipherShield. It uses Viper for file/env/flag parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Output formats understood by the report renderers.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	outputs   = []string{OutputText, OutputJSON, OutputYAML}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Config is the persisted application configuration.
type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
	Output   string `mapstructure:"output" yaml:"output"`
	// Reveal starts the interactive checker with the password visible.
	Reveal bool `mapstructure:"reveal" yaml:"reveal"`
}

// Defaults returns the built-in value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"language":  "en",
		"log-level": "warn",
		"output":    OutputText,
		"reveal":    false,
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if !slices.Contains(outputs, c.Output) {
		return fmt.Errorf("%w: output %q (want one of %s)", ErrInvalidConfig, c.Output, strings.Join(outputs, ", "))
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("%w: log-level %q (want one of %s)", ErrInvalidConfig, c.LogLevel, strings.Join(logLevels, ", "))
	}
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("%w: language must not be empty", ErrInvalidConfig)
	}
	return nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "CipherShield")
		default: // Linux, macOS, etc.
			configDir = "/etc/ciphershield"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "ciphershield")
	}

	return filepath.Join(configDir, "ciphershield.yaml"), nil
}

// LoadConfig resolves T from, in increasing precedence: defaults, the config
// file, CIPHERSHIELD_* environment variables and the command's flags.
// A missing config file is reported as viper.ConfigFileNotFoundError together
// with the otherwise fully resolved value.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("ciphershield")
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	// 3. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 4. Read in the config file. Not finding one is fine but is reported
	// so the caller can write a default.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, fmt.Errorf("reading config: %w", err)
		}
		notFound = err
	}

	// 5. Read from environment variables
	v.SetEnvPrefix("ciphershield")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// 6. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}

	return c, notFound
}

// FromDefaults decodes defaults into T. No file, environment variable or flag
// is consulted, so the result is what a fresh install starts from.
func FromDefaults[T any](defaults map[string]any) (T, error) {
	var c T
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding defaults: %w", err)
	}
	return c, nil
}

// WriteConfigFile stores c as YAML at the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
