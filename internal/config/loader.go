package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
)

// Environment variables recognized as overrides over the config file
const (
	EnvAPIURL = "DROVER_API_URL"
	EnvModel  = "DROVER_MODEL"
)

// LoadEnvFile reads a .env file into the process environment without
// clobbering variables that are already set. A missing path is an error;
// an empty path is a no-op.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("env file not found: %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides layers DROVER_* environment variables over the parsed
// config. The config's env_file is loaded first so a .env next to the
// config behaves the same as exported variables.
func ApplyEnvOverrides(config *Config, configDir string) error {
	if config.EnvFile != "" {
		if err := LoadEnvFile(resolvePath(config.EnvFile, configDir)); err != nil {
			return err
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		config.API.URL = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		config.Model = v
	}

	return Validate(config)
}

// resolvePath resolves a potentially relative path against a base directory
func resolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// FindConfigFile searches for a config file in standard locations
func FindConfigFile() (string, error) {
	candidates := []string{
		"drover.yaml",
		"drover.yml",
		".drover.yaml",
		".drover.yml",
	}

	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	return "", fmt.Errorf("no config file found (tried: %v)", candidates)
}

// CheckFilePermissions checks if a file has secure permissions.
// On Unix-like systems, it verifies the file is not world-writable.
func CheckFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking file permissions: %w", err)
	}

	if info.Mode().Perm()&0002 != 0 {
		return fmt.Errorf("config file %s has insecure permissions: world-writable files can be modified by any user. Please run: chmod o-w %s", path, path)
	}

	return nil
}
