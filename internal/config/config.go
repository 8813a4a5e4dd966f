package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"envscope/internal/envscope"
)

// Environment overrides, applied on top of config.yaml.
const (
	PrefixEnv   = "ENVSCOPE_PREFIX"
	LogLevelEnv = "ENVSCOPE_LOG_LEVEL"
)

// Config is the content of config.yaml.
type Config struct {
	// Prefix filters `envscope show` when no --prefix is given.
	Prefix string `yaml:"prefix" json:"prefix,omitempty" jsonschema:"description=Variable name prefix listed by envscope show,default=ACCELERATE_"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Prefix: envscope.DefaultPrefix, LogLevel: "info"}
}

// Load reads config.yaml and applies environment overrides.
// A missing file yields Default without error.
func Load() (Config, error) {
	cfg := Default()
	p, err := Path()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	switch {
	case err == nil:
		var fromFile Config
		if err := yaml.Unmarshal(b, &fromFile); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
		cfg.merge(fromFile)
	case !os.IsNotExist(err):
		return cfg, err
	}
	cfg.merge(Config{
		Prefix:   os.Getenv(PrefixEnv),
		LogLevel: os.Getenv(LogLevelEnv),
	})
	return cfg, nil
}

// merge copies the non-empty fields of o into c.
func (c *Config) merge(o Config) {
	if s := strings.TrimSpace(o.Prefix); s != "" {
		c.Prefix = s
	}
	if s := strings.TrimSpace(o.LogLevel); s != "" {
		c.LogLevel = s
	}
}

// Save writes cfg to config.yaml, creating the directory if needed.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}
