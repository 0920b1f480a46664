package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when neither the config file nor the environment
// names an API endpoint.
const DefaultAPIURL = "https://api.axioa.in"

// Config holds all axioa client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig names the backend and credentials.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

// LoggingConfig controls the on-disk log the TUI writes to (stdout belongs
// to the terminal UI).
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Dir returns the axioa config directory (~/.axioa).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".axioa"), nil
}

// Load reads ~/.axioa/config.yml if present, then applies environment
// overrides (AXIOA_API_URL, AXIOA_TOKEN, AXIOA_LOG_LEVEL). A missing config
// file is not an error; defaults fill the gaps.
func Load() (*Config, error) {
	cfg := &Config{
		API:     APIConfig{BaseURL: DefaultAPIURL},
		Logging: LoggingConfig{Level: "info"},
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	cfg.Logging.File = filepath.Join(dir, "axioa.log")

	path := filepath.Join(dir, "config.yml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultAPIURL
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AXIOA_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("AXIOA_TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv("AXIOA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// tokenFilePath returns ~/.axioa/token.
func tokenFilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

// ReadToken returns the auth token using precedence: env var > config value
// > token file > empty.
func (c *Config) ReadToken() string {
	if tok := os.Getenv("AXIOA_TOKEN"); tok != "" {
		return tok
	}
	if c.API.Token != "" {
		return c.API.Token
	}
	path, err := tokenFilePath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveToken writes the token to ~/.axioa/token with owner-only permissions.
func SaveToken(token string) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create ~/.axioa dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// ClearToken removes the saved token. Missing file is not an error.
func ClearToken() error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// NewLogger builds the file-backed zap logger. The TUI owns stdout, so all
// structured logs go to the configured file.
func NewLogger(lc LoggingConfig) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(lc.File), 0700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{lc.File}
	zcfg.ErrorOutputPaths = []string{lc.File}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
