// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the NumerBay client.
//
// Configuration is read from a single YAML file specified by:
//   - the NUMERBAY_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// There is no discovery chain or merging of multiple files; a missing
// path simply yields defaults. Credentials may be left out of the file
// and supplied through NUMERBAY_USERNAME / NUMERBAY_PASSWORD instead,
// which always take precedence so a checked-in config file never pins
// credentials.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfig   = "NUMERBAY_CONFIG"
	EnvUsername = "NUMERBAY_USERNAME"
	EnvPassword = "NUMERBAY_PASSWORD"
)

// Config holds client settings.
type Config struct {
	// BaseURL overrides the production backend API root.
	BaseURL string `yaml:"base_url,omitempty"`

	// Username and Password authenticate against the backend. Either
	// may be omitted in favor of the environment variables.
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// KeyPath points at the buyer's exported key file, used to decrypt
	// encrypted artifacts.
	KeyPath string `yaml:"key_path,omitempty"`

	// ShowProgress renders terminal progress bars during transfers.
	ShowProgress bool `yaml:"show_progress"`

	// Timeout applies to each individual backend request. Written as a
	// Go duration string ("30s", "2m").
	Timeout Duration `yaml:"timeout,omitempty"`
}

// Duration wraps time.Duration so YAML values can be written as duration
// strings.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (duration *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", value.Value, err)
	}
	*duration = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration string form.
func (duration Duration) MarshalYAML() (any, error) {
	return time.Duration(duration).String(), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{ShowProgress: true}
}

// Load reads configuration from path, falling back to the NUMERBAY_CONFIG
// environment variable and then to defaults when no file is named.
// Credential environment variables override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	configuration := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, configuration); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if username := os.Getenv(EnvUsername); username != "" {
		configuration.Username = username
	}
	if password := os.Getenv(EnvPassword); password != "" {
		configuration.Password = password
	}
	return configuration, nil
}
