// Package config provides reading and writing of eglob configuration.
// Supports both global (~/.eglob/config.yaml) and local (.eglob/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.eglob/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .eglob/config.yaml
	ScopeLocal
)

// Limits holds pattern compilation limits.
type Limits struct {
	MaxExpansion *int `yaml:"max_expansion,omitempty"`
}

// Output holds output preferences.
type Output struct {
	Color *bool `yaml:"color,omitempty"`
}

// DefaultMaxExpansion is applied when no ceiling is configured.
const DefaultMaxExpansion = 10000

// Validation bounds for configuration values.
const (
	MinMaxExpansion = 1
	MaxMaxExpansion = 1000000
)

// Config contains configuration for eglob.
type Config struct {
	Limits Limits `yaml:"limits,omitempty"`
	Output Output `yaml:"output,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxExpansion != nil {
		v := *c.Limits.MaxExpansion
		if v < MinMaxExpansion || v > MaxMaxExpansion {
			return fmt.Errorf("%w: max_expansion must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxExpansion, MaxMaxExpansion, v)
		}
	}
	return nil
}

// MaxExpansion returns the alternation expansion ceiling (defaults to 10000).
func (c *Config) MaxExpansion() int {
	if c.Limits.MaxExpansion == nil {
		return DefaultMaxExpansion
	}
	return *c.Limits.MaxExpansion
}

// Color returns whether coloured terminal output is enabled (defaults to true).
func (c *Config) Color() bool {
	if c.Output.Color == nil {
		return true
	}
	return *c.Output.Color
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".eglob", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.eglob/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eglob", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
