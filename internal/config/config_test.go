package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drover/internal/domain"
	"drover/internal/filter"
)

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://automation.internal:3000/api", cfg.API.URL)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 45000, cfg.NavigationTimeout)

	console := cfg.Filters.Console
	assert.True(t, console.Warning.Bool)
	assert.False(t, console.Error.Valid, "unset field stays unset")
	assert.Equal(t, int64(200), console.TruncateLength.Int64)
	assert.Equal(t, filter.StringList{"favicon", "telemetry heartbeat"}, console.ExcludeStringFilters)

	network := cfg.Filters.Network
	assert.True(t, network.StatusSuccess.Valid)
	assert.False(t, network.StatusSuccess.Bool)
	assert.True(t, network.IncludeHeaders.Bool)
	assert.Equal(t, filter.StringList{"/api/"}, network.IncludeStringFilters)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestLoad_InvalidTruncate(t *testing.T) {
	_, err := Load(filepath.Join("..", "..", "testdata", "configs", "invalid_truncate.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "truncate_length")
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.API.URL)
	assert.Equal(t, "claude-3-5-sonnet-latest", cfg.Model)
	assert.Equal(t, 30000, cfg.NavigationTimeout)
	assert.False(t, cfg.Filters.Console.Error.Valid)
}

func TestParse_BadScheme(t *testing.T) {
	_, err := Parse([]byte("api:\n  url: ftp://example.com\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.url")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:3000/api", cfg.API.URL)
	require.NoError(t, Validate(cfg))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://override.example:9999/api")
	t.Setenv(EnvModel, "gpt-4o-mini")

	cfg := Default()
	require.NoError(t, ApplyEnvOverrides(cfg, ""))

	assert.Equal(t, "http://override.example:9999/api", cfg.API.URL)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
}

func TestApplyEnvOverrides_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(EnvModel+"=from-env-file\n"), 0600))

	// Variable must not already be set for godotenv.Load to apply it
	t.Setenv(EnvModel, "")
	os.Unsetenv(EnvModel)

	cfg := Default()
	cfg.EnvFile = ".env"
	require.NoError(t, ApplyEnvOverrides(cfg, dir))

	assert.Equal(t, "from-env-file", cfg.Model)
}

func TestLoad_WorldWritableRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drover.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gpt-4o\n"), 0666))
	// os.WriteFile's mode is subject to the umask; chmod to guarantee world-writable
	require.NoError(t, os.Chmod(path, 0666))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insecure permissions")
}
