// Package config provides configuration loading and management for
// omecompanion. It handles loading defaults from YAML files so that
// recurring conversion settings (slice calibration, filename template) do
// not have to be repeated on every invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML.
// Command-line flags take precedence over values set here.
type Config struct {
	// Companion parameters: defaults for the concat mode.
	Companion struct {
		// PhysicalSizeZ is the default physical distance between
		// consecutive slices.
		PhysicalSizeZ float64 `yaml:"physicalSizeZ"`

		// PhysicalSizeZUnit is the default unit for PhysicalSizeZ.
		PhysicalSizeZUnit string `yaml:"physicalSizeZUnit"`

		// FilenameTemplate is the default per-slice filename template,
		// with "{z}" as the slice-number placeholder.
		FilenameTemplate string `yaml:"filenameTemplate"`
	} `yaml:"companion"`

	// Output parameters.
	Output struct {
		// Verbose dumps the parsed document to stderr before transforming.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Companion.PhysicalSizeZ = 1.0
	cfg.Companion.PhysicalSizeZUnit = "µm"
	cfg.Companion.FilenameTemplate = ""

	cfg.Output.Verbose = false

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
