package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStyle      = "sweep"
	DefaultDurationMs = 5000
	DefaultBackend    = "ansi"
)

var Backends = []string{"ansi", "tcell"}

type Config struct {
	Style      string `yaml:"style"`
	Text       string `yaml:"text"`
	DurationMs int64  `yaml:"duration_ms"`
	Backend    string `yaml:"backend"`
}

func DefaultConfig() *Config {
	return &Config{
		Style:      DefaultStyle,
		DurationMs: DefaultDurationMs,
		Backend:    DefaultBackend,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks fields that do not depend on the style registry.
func (c *Config) Validate() error {
	if c.Style == "" {
		return fmt.Errorf("style must not be empty")
	}
	if c.DurationMs < 0 {
		return fmt.Errorf("duration_ms must not be negative, got %d", c.DurationMs)
	}
	for _, b := range Backends {
		if c.Backend == b {
			return nil
		}
	}
	return fmt.Errorf("unknown backend: %s", c.Backend)
}

// Duration converts DurationMs; zero means run until cancelled.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}
