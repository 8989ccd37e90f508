// Package config handles configuration loading and validation for loupe
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration for loupe
type Config struct {
	// UI holds theme and color settings owned by the theme provider.
	UI UIConfig `yaml:"ui"`

	// Storage locates the preferences database.
	Storage StorageConfig `yaml:"storage"`

	// Viewer holds page rendering defaults.
	Viewer ViewerConfig `yaml:"viewer"`
}

// UIConfig holds theme settings
type UIConfig struct {
	Theme   string `yaml:"theme"` // light, dark, or system
	NoColor bool   `yaml:"no_color"`
}

// StorageConfig holds persistence settings
type StorageConfig struct {
	Dir string `yaml:"dir"` // defaults to the user config dir
}

// ViewerConfig holds rendering settings
type ViewerConfig struct {
	Width int `yaml:"width"` // 0 means detect from the terminal
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "system",
		},
		Viewer: ViewerConfig{
			Width: 0,
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "", "light", "dark", "system":
	default:
		return fmt.Errorf("ui.theme %q is not one of light, dark, system", c.UI.Theme)
	}
	if c.Viewer.Width < 0 {
		return fmt.Errorf("viewer.width must not be negative")
	}
	return nil
}

// DefaultPath returns the path to config.yaml under the user config dir.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, "loupe", "config.yaml"), nil
}

// DataDir returns the directory holding the preferences database. An
// explicit storage.dir wins; otherwise it sits next to the config file.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, "loupe"), nil
}
