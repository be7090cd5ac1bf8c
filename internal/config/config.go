// Package config carries the configuration of the Prism debug pipeline
// tools: diagnostic limits, console behavior and log verbosity.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the tool configuration. Zero-valued fields fall back to the
// defaults at load time.
type Config struct {
	// MaxErrors stops retaining errors past this count.
	MaxErrors int `yaml:"max_errors"`
	// MaxWarnings stops retaining warnings past this count.
	MaxWarnings int `yaml:"max_warnings"`
	// Color enables ANSI colors in diagnostic output.
	Color bool `yaml:"color"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxErrors:   100,
		MaxWarnings: 1000,
		Color:       true,
		LogLevel:    "info",
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if c.MaxErrors <= 0 {
		c.MaxErrors = Default().MaxErrors
	}
	if c.MaxWarnings <= 0 {
		c.MaxWarnings = Default().MaxWarnings
	}
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
	return c, nil
}

// ZapLevel maps LogLevel onto a zap level.
func (c Config) ZapLevel() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.Set(c.LogLevel); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
