package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/ndjson/internal/errors"
)

// Report output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config represents the complete configuration for the ndjson tool
type Config struct {
	Output OutputConfig `yaml:"output"`
	Report ReportConfig `yaml:"report"`
}

// OutputConfig controls how decoded streams are written back out
type OutputConfig struct {
	// Array writes the stream as one JSON array document instead of NDJSON.
	Array bool `yaml:"array"`
}

// ReportConfig controls the stream summary
type ReportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Array: false,
		},
		Report: ReportConfig{
			Enabled: false,
			Format:  FormatText,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(
			fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(
			fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Report.Format {
	case FormatText, FormatYAML:
		return nil
	default:
		return errors.NewConfigError(
			fmt.Sprintf("invalid report format '%s' (want %s or %s)",
				c.Report.Format, FormatText, FormatYAML), nil)
	}
}

// FindConfigFile searches for a config file in the current directory and its
// parents, returning the first match or "" when none exists.
func FindConfigFile() string {
	configNames := []string{".ndjson.yml", ".ndjson.yaml", "ndjson.yml", "ndjson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// MergeCLI applies explicitly-set CLI flags over the loaded config. Boolean
// flags only override when set, so a config file value survives defaults.
func (c *Config) MergeCLI(array, summary bool, summaryFormat string) *Config {
	merged := *c
	if array {
		merged.Output.Array = true
	}
	if summary {
		merged.Report.Enabled = true
	}
	if summaryFormat != "" {
		merged.Report.Format = summaryFormat
	}
	return &merged
}
