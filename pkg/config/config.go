// Package config provides loading and validation of the optional run
// defaults file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/treasurytools/treasuryman/pkg/input"
)

// Config holds run defaults loaded from YAML. Command-line flags that are
// explicitly set override these values.
type Config struct {
	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`

	// Input is the source file path. Empty means empty input.
	Input string `yaml:"input,omitempty"`

	// Output is the destination file path. Empty means no output is written.
	Output string `yaml:"output,omitempty"`

	// Encoding is the input text encoding (utf-8, windows-1251, latin-1).
	Encoding string `yaml:"encoding,omitempty"`

	// LogFormat selects the diagnostic log handler (text or json).
	LogFormat string `yaml:"log_format,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Encoding:  string(input.EncodingUTF8),
		LogFormat: "text",
	}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if _, err := input.ParseEncoding(cfg.Encoding); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format: unknown format %q (use text or json)", cfg.LogFormat)
	}

	return nil
}
