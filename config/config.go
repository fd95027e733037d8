// Package config loads matshell settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matshell/registry"
)

// EnvConfigPath names the environment variable LoadFromEnv consults.
const EnvConfigPath = "MATSHELL_CONFIG"

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota
	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks YAML for .yaml/.yml and TOML for everything else.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Config holds the complete shell configuration
type Config struct {
	Capacity        int    `toml:"capacity" yaml:"capacity"`
	DataDir         string `toml:"data_dir" yaml:"data_dir"`
	Prompt          string `toml:"prompt" yaml:"prompt"`
	Seed            uint64 `toml:"seed" yaml:"seed"`
	Bootstrap       bool   `toml:"bootstrap" yaml:"bootstrap"`
	LogLevel        string `toml:"log_level" yaml:"log_level"`
	LogFormat       string `toml:"log_format" yaml:"log_format"`
	MetricsTextfile string `toml:"metrics_textfile" yaml:"metrics_textfile"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Capacity:  registry.DefaultCapacity,
		DataDir:   ".",
		Prompt:    "> ",
		Bootstrap: true,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path on top of Default() and validates the result.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	switch DetectFormat(path) {
	case FormatYAML:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.expandEnvVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by MATSHELL_CONFIG, then ./matshell.toml,
// then ~/.config/matshell/config.toml. With none present it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	candidates := []string{"matshell.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "matshell", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity %d: %w", c.Capacity, ErrInvalid)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir empty: %w", ErrInvalid)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q: %w", c.LogFormat, ErrInvalid)
	}

	return nil
}

// expandEnvVars expands $VAR references in path-like fields.
func (c *Config) expandEnvVars() {
	c.DataDir = os.ExpandEnv(c.DataDir)
	c.MetricsTextfile = os.ExpandEnv(c.MetricsTextfile)
}
