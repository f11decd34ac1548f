package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the optional config file read from the working directory.
const DefaultPath = "peoplereport.yaml"

// Config holds all peoplereport configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Workload simulator
	Workload WorkloadConfig `yaml:"workload"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "peoplereport",
		Version: "1.0.0",

		Logging: LoggingConfig{
			Level:  "debug",
			Format: "text",
			File:   "app.log",
		},

		Workload: WorkloadConfig{
			Size: DefaultWorkloadSize,
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file is not an error: defaults (plus env overrides) are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if path := os.Getenv("PEOPLEREPORT_LOG_FILE"); path != "" {
		c.Logging.File = path
	}
	if level := os.Getenv("PEOPLEREPORT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if size := os.Getenv("PEOPLEREPORT_WORKLOAD_SIZE"); size != "" {
		n, err := parseSize(size)
		if err != nil {
			return fmt.Errorf("invalid PEOPLEREPORT_WORKLOAD_SIZE: %w", err)
		}
		c.Workload.Size = n
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Logging.File == "" {
		return fmt.Errorf("logging.file must not be empty")
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	if c.Workload.Size < 0 {
		return fmt.Errorf("workload.size must be >= 0, got %d", c.Workload.Size)
	}
	return nil
}
