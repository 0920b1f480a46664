package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setHome points config lookups at a throwaway home directory.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AXIOA_API_URL", "")
	t.Setenv("AXIOA_TOKEN", "")
	t.Setenv("AXIOA_LOG_LEVEL", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := setHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, ".axioa", "axioa.log"), cfg.Logging.File)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, ".axioa")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(
		"api:\n  base_url: https://staging.axioa.in\n  token: file-token\nlogging:\n  level: debug\n",
	), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.axioa.in", cfg.API.BaseURL)
	assert.Equal(t, "file-token", cfg.API.Token)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, ".axioa")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(
		"api:\n  base_url: https://staging.axioa.in\n",
	), 0600))
	t.Setenv("AXIOA_API_URL", "http://localhost:5000")
	t.Setenv("AXIOA_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, ".axioa")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("api: ["), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestTokenPrecedence(t *testing.T) {
	setHome(t)
	require.NoError(t, SaveToken("from-file\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.ReadToken(), "file token is trimmed")

	cfg.API.Token = "from-config"
	assert.Equal(t, "from-config", cfg.ReadToken())

	t.Setenv("AXIOA_TOKEN", "from-env")
	assert.Equal(t, "from-env", cfg.ReadToken())
}

func TestClearToken(t *testing.T) {
	setHome(t)
	require.NoError(t, SaveToken("tok"))
	require.NoError(t, ClearToken())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.ReadToken())

	// Clearing twice is fine.
	assert.NoError(t, ClearToken())
}

func TestNewLogger(t *testing.T) {
	home := setHome(t)
	logFile := filepath.Join(home, ".axioa", "axioa.log")

	logger, err := NewLogger(LoggingConfig{Level: "debug", File: logFile})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewLoggerBadLevelFallsBack(t *testing.T) {
	home := setHome(t)
	logFile := filepath.Join(home, ".axioa", "axioa.log")

	logger, err := NewLogger(LoggingConfig{Level: "shouty", File: logFile})
	require.NoError(t, err)
	logger.Info("still works")
}
