package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"drover/internal/constants"
	"drover/internal/domain"
	"drover/internal/filter"
)

// Config represents the top-level drover configuration
type Config struct {
	API               APIConfig     `yaml:"api"`
	EnvFile           string        `yaml:"env_file"`
	Model             string        `yaml:"model"`
	NavigationTimeout int           `yaml:"navigation_timeout"`
	Filters           FiltersConfig `yaml:"filters"`
}

// APIConfig points at the remote automation API
type APIConfig struct {
	URL string `yaml:"url"`
}

// FiltersConfig supplies the base filter layer: possibly-partial filters
// that sit between the compiled-in defaults and per-command overrides.
type FiltersConfig struct {
	Console filter.Console `yaml:"console"`
	Network filter.Network `yaml:"network"`
}

// Load reads and parses a configuration file. A missing file is reported
// via domain.ErrConfigNotFound so callers can fall back to defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	if err := CheckFilePermissions(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse parses configuration from YAML bytes and applies defaults
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns a configuration with every field at its compiled-in
// default, used when no config file exists.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.API.URL == "" {
		config.API.URL = constants.DefaultAPIURL
	}
	if config.Model == "" {
		config.Model = constants.DefaultModel
	}
	if config.NavigationTimeout == 0 {
		config.NavigationTimeout = constants.DefaultNavigationTimeout
	}
}
