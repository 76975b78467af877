// Package config provides configuration management for calc.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the file name written by `calc config init`.
const DefaultFile = ".calc.yaml"

// Config represents the configuration for calc.
type Config struct {
	// General settings
	Verbose bool `yaml:"verbose"`

	Input  InputConfig  `yaml:"input"`
	Compat CompatConfig `yaml:"compat"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig controls how operands are read.
type InputConfig struct {
	// AllowDecimal accepts decimal operands such as 2.5. By default only
	// integer tokens are accepted.
	AllowDecimal bool `yaml:"allowDecimal"`
}

// CompatConfig toggles compatibility behavior.
type CompatConfig struct {
	// LegacyDivision prints the product under the division label.
	LegacyDivision bool `yaml:"legacyDivision"`
}

// OutputConfig contains output-related configuration.
type OutputConfig struct {
	TrailingBlankLine *bool `yaml:"trailingBlankLine,omitempty"`
}

// BlankLineAfterResult reports whether a result line is followed by an empty line.
func (o OutputConfig) BlankLineAfterResult() bool {
	return o.TrailingBlankLine == nil || *o.TrailingBlankLine
}

// Default returns a config with default values.
func Default() *Config {
	trailing := true

	return &Config{
		Output: OutputConfig{
			TrailingBlankLine: &trailing,
		},
	}
}

// Load loads configuration from file, falling back to defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	// If no config file specified, try default locations
	if configFile == "" {
		candidates := []string{".calc.yaml", ".calc.yml"}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate

				break
			}
		}
	}

	if configFile != "" {
		if err := cfg.loadFromFile(configFile); err != nil {
			return nil, err
		}
	}

	cfg.validate()

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML config file: %w", err)
	}

	return nil
}

func (c *Config) validate() {
	if c.Output.TrailingBlankLine == nil {
		trailing := true
		c.Output.TrailingBlankLine = &trailing
	}
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write YAML config file: %w", err)
	}

	return nil
}
