package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the pytt tools.
type Config struct {
	Title  TitleConfig  `yaml:"title"`
	Colors ColorsConfig `yaml:"colors"`
	Repos  ReposConfig  `yaml:"repos"`
}

// TitleConfig holds title command configuration.
type TitleConfig struct {
	Lowercase []string `yaml:"lowercase"` // Replaces the built-in minor-word list when set
}

// ColorsConfig holds terminal color configuration.
type ColorsConfig struct {
	Mode string `yaml:"mode"` // "auto", "on" or "off"
}

// ReposConfig holds repository scanning and maintenance configuration.
type ReposConfig struct {
	Roots           []string `yaml:"roots"`
	SubLevel        bool     `yaml:"sub_level"`
	Ignores         []string `yaml:"ignores"`
	Jobs            int      `yaml:"jobs"`
	Cache           bool     `yaml:"cache"`
	CacheTTLMinutes int      `yaml:"cache_ttl_minutes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Colors: ColorsConfig{
			Mode: "auto",
		},
		Repos: ReposConfig{
			Jobs:            4,
			Cache:           true,
			CacheTTLMinutes: 60,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads configuration from the default locations.
func LoadDefault() (*Config, error) {
	// Try pytt/pytt.yaml under the user config directory
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "pytt", "pytt.yaml")
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	// Try pytt.yaml in the working directory
	if _, err := os.Stat("pytt.yaml"); err == nil {
		return Load("pytt.yaml")
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheTTL returns the scan cache lifetime. Zero disables expiry.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Repos.CacheTTLMinutes) * time.Minute
}

// CachePath returns the path to the repository scan cache database,
// creating its directory if needed.
func CachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	cacheDir := filepath.Join(dir, "pytt")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "repos.db"), nil
}
