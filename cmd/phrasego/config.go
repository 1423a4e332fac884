package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level CLI configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// InputConfig names the text file to index and its encoding.
type InputConfig struct {
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"`
}

// SearchConfig controls query defaults.
type SearchConfig struct {
	MaxDistance int `yaml:"maxDistance"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// loadConfig reads a YAML config file (if provided) and applies
// environment-variable overrides. Missing values fall back to defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Encoding: "utf-8",
		},
		Search: SearchConfig{
			MaxDistance: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
	}
}

// applyEnvOverrides reads PHRASEGO_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PHRASEGO_INPUT_PATH"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("PHRASEGO_INPUT_ENCODING"); v != "" {
		cfg.Input.Encoding = v
	}
	if v := os.Getenv("PHRASEGO_MAX_DISTANCE"); v != "" {
		if md, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxDistance = md
		}
	}
	if v := os.Getenv("PHRASEGO_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PHRASEGO_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("PHRASEGO_METRICS_ADDR"); v != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = v
	}
}
