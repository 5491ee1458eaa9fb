// Package config holds the settings of the aoc2024 command: which year's
// inputs to use, where they are cached and how to fetch missing ones.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the command looks for its config file.
const DefaultPath = "aoc.yaml"

// Config is the aoc2024 configuration file.
type Config struct {
	Year          int    `yaml:"year"`
	InputDir      string `yaml:"input_dir"`
	SessionFile   string `yaml:"session_file"`
	BaseURL       string `yaml:"base_url"`
	VerifySamples bool   `yaml:"verify_samples"`
	Fetch         bool   `yaml:"fetch"`

	// Session is the session cookie value, read from AOC_SESSION. It is
	// never written to the config file.
	Session string `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Year:          2024,
		InputDir:      "inputs",
		SessionFile:   filepath.Join(home, "keys", "aoc.session"),
		BaseURL:       "https://adventofcode.com",
		VerifySamples: true,
		Fetch:         true,
	}
}

// Load reads the YAML config at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("AOC_SESSION"); v != "" {
		c.Session = v
	}
	if v := os.Getenv("AOC_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("AOC_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AOC_YEAR: %w", err)
		}
		c.Year = year
	}
	return nil
}

// Save writes c as YAML to path, creating its directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SessionToken returns the session cookie value: AOC_SESSION if set,
// otherwise the contents of SessionFile.
func (c *Config) SessionToken() (string, error) {
	if c.Session != "" {
		return c.Session, nil
	}
	b, err := os.ReadFile(c.SessionFile)
	if err != nil {
		return "", fmt.Errorf("no AOC_SESSION and %w", err)
	}
	return string(b), nil
}
