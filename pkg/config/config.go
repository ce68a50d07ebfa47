// Package config loads minitest settings from YAML files and
// MINITEST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"digital.vasic.minitest/pkg/env"
)

// EnvPrefix is prepended to every environment variable name read
// by ApplyEnv.
const EnvPrefix = "MINITEST_"

// ErrInvalidConfig is returned when a configuration does not
// satisfy the configuration schema.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of a minitest run.
type Config struct {
	// Progress enables the '.'/'F' progress line.
	Progress bool `yaml:"progress" json:"progress"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" json:"verbose"`
	// LogFormat is one of console, json or none.
	LogFormat string `yaml:"log_format" json:"log_format"`
	// ReportFormat is one of text, json or yaml.
	ReportFormat string `yaml:"report_format" json:"report_format"`
	// MonitorAddr, when set, serves the live run monitor.
	MonitorAddr string `yaml:"monitor_addr,omitempty" json:"monitor_addr,omitempty"`
	// MetricsAddr, when set, serves Prometheus metrics.
	MetricsAddr string `yaml:"metrics_addr,omitempty" json:"metrics_addr,omitempty"`
}

// Default returns the configuration used when nothing else is
// specified.
func Default() Config {
	return Config{
		Progress:     true,
		LogFormat:    "none",
		ReportFormat: "text",
	}
}

// Load reads and validates the YAML configuration at path. Keys
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf(
			"failed to read config %s: %w", path, err,
		)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf(
			"failed to load config %s: %w", path, err,
		)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML (or JSON) configuration
// document. An empty document yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		return cfg, nil
	}
	if err := validateDocument(doc); err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks c against the configuration schema.
func (c Config) Validate() error {
	return validateDocument(c)
}

// ApplyEnv overrides c with any MINITEST_PROGRESS, MINITEST_VERBOSE,
// MINITEST_LOG_FORMAT, MINITEST_REPORT_FORMAT, MINITEST_MONITOR_ADDR
// and MINITEST_METRICS_ADDR values visible to l. The loader is
// expected to apply EnvPrefix itself.
func (c *Config) ApplyEnv(l env.Loader) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{"PROGRESS", &c.Progress},
		{"VERBOSE", &c.Verbose},
	}
	for _, b := range bools {
		v, ok, err := l.GetBool(b.key)
		if err != nil {
			return fmt.Errorf("failed to apply env: %w", err)
		}
		if ok {
			*b.dst = v
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"LOG_FORMAT", &c.LogFormat},
		{"REPORT_FORMAT", &c.ReportFormat},
		{"MONITOR_ADDR", &c.MonitorAddr},
		{"METRICS_ADDR", &c.MetricsAddr},
	}
	for _, s := range strs {
		if v, ok := l.Lookup(s.key); ok {
			*s.dst = v
		}
	}
	return nil
}
