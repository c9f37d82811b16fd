// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "limits.max_expansion").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned when a configuration key is not recognised.
var ErrUnknownKey = errors.New("unknown config key")

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"limits.max_expansion",
		"output.color",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "limits.max_expansion":
		return strconv.Itoa(c.MaxExpansion()), nil
	case "output.color":
		return strconv.FormatBool(c.Color()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "limits.max_expansion":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxExpansion || n > MaxMaxExpansion {
			return fmt.Errorf("%w: limits.max_expansion must be between %d and %d",
				ErrInvalidValue, MinMaxExpansion, MaxMaxExpansion)
		}
		c.Limits.MaxExpansion = &n
	case "output.color":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: output.color must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Output.Color = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"limits.max_expansion": strconv.Itoa(c.MaxExpansion()),
		"output.color":         strconv.FormatBool(c.Color()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "limits.max_expansion":
		return c.Limits.MaxExpansion != nil
	case "output.color":
		return c.Output.Color != nil
	default:
		return false
	}
}
