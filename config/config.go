// Package config provides configuration loading for ocrsift.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/ocrsift/classify"
	"github.com/tsawler/ocrsift/normalize"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel  = "OCRSIFT_LOG_LEVEL"
	EnvLogFormat = "OCRSIFT_LOG_FORMAT"
	EnvWorkers   = "OCRSIFT_WORKERS"
)

// Config holds all configuration for a run.
type Config struct {
	Input     InputConfig       `yaml:"input"`
	Normalize normalize.Options `yaml:"normalize"`
	Classify  classify.Config   `yaml:"classify"`
	Output    OutputConfig      `yaml:"output"`
	Log       LogConfig         `yaml:"log"`

	// Workers bounds page-level parallelism. Zero uses one worker per CPU.
	Workers int `yaml:"workers"`
}

// InputConfig controls how source documents are read.
type InputConfig struct {
	// LowercaseNames folds element and attribute names to lower case
	// when loading.
	LowercaseNames bool `yaml:"lowercase_names"`
}

// OutputConfig controls the written documents.
type OutputConfig struct {
	// Producer is written as the producer attribute of the guard root.
	Producer string `yaml:"producer"`

	// Indent is repeated once per nesting level. Empty writes each
	// document on a single line.
	Indent string `yaml:"indent"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Normalize: normalize.DefaultOptions(),
		Classify:  classify.DefaultConfig(),
		Output: OutputConfig{
			Producer: "ocrsift",
			Indent:   "  ",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from OCRSIFT_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks the configuration for values no run can use.
func (c Config) Validate() error {
	var errs []error
	if err := c.Classify.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if strings.TrimSpace(c.Output.Indent) != "" {
		errs = append(errs, fmt.Errorf("indent must be whitespace, got %q", c.Output.Indent))
	}
	return errors.Join(errs...)
}

// YAML renders the configuration as a YAML document.
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
