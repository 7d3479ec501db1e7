package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultMNISTURL is the base URL the MNIST archives are fetched from when the
// config does not override it.
const DefaultMNISTURL = "https://ossci-datasets.s3.amazonaws.com/mnist/"

// Config holds the global dataset configuration
type Config struct {
	DataDir  string `yaml:"data_dir"`
	Seed     int64  `yaml:"seed"`
	MNISTURL string `yaml:"mnist_url"`
}

// LoadConfig reads and validates a YAML config file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the dataset configuration
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must be set")
	}
	return nil
}

// MNISTDir returns the directory the MNIST blobs are expected in.
func (c *Config) MNISTDir() string {
	return filepath.Join(c.DataDir, "MNIST")
}

// BaseURL returns the configured MNIST mirror, falling back to DefaultMNISTURL.
func (c *Config) BaseURL() string {
	if c.MNISTURL != "" {
		return c.MNISTURL
	}
	return DefaultMNISTURL
}
