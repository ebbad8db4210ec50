// Package config loads the gopync CLI configuration. The notifier library
// itself takes no configuration; everything here only shapes how the
// command-line tool calls it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds CLI-level defaults and behavior toggles.
type Config struct {
	DefaultTitle string `koanf:"default_title"`
	DefaultSound string `koanf:"default_sound"`
	DefaultGroup string `koanf:"default_group"`

	// UniqueGroup appends a fresh UUID to the group of every notification so
	// successive ones never replace each other in Notification Center.
	UniqueGroup bool `koanf:"unique_group"`

	// Fallback sends the notification through beeep when no terminal-notifier
	// binary can be resolved. Only the notify command honors it; remove and
	// list have nothing to fall back to.
	Fallback bool `koanf:"fallback"`

	// WaitTimeoutSeconds bounds blocking waits; 0 keeps them unbounded.
	WaitTimeoutSeconds int `koanf:"wait_timeout_seconds" validate:"min=0"`
}

// defaults are applied before any file or environment source.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"default_title":        "",
		"default_sound":        "",
		"default_group":        "",
		"unique_group":         false,
		"fallback":             false,
		"wait_timeout_seconds": 0,
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/gopync/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gopync", "config.json")
}

// Load reads configuration from the given file path (skipped when the file
// is absent) and GOPYNC_* environment variables, with environment taking
// priority. The resulting struct is validated before being returned.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		_ = k.Set(key, value)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider("GOPYNC_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: GOPYNC_DEFAULT_SOUND -> default_sound
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "GOPYNC_"))
}
