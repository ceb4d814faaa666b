package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds skyview's runtime settings.
type Config struct {
	APIKey         string
	BaseURL        string
	RangeDays      int
	TimeoutSeconds int
	LogFile        string
	LogLevel       string
}

const (
	defaultConfigPath = "~/.config/skyview/config.toml"
	defaultLogFile    = "~/.local/state/skyview/skyview.log"
	defaultAPIKey     = "DEMO_KEY"
	defaultBaseURL    = "https://api.nasa.gov"
	defaultRangeDays  = 7
	defaultTimeout    = 10
	defaultLogLevel   = "info"

	// APIKeyEnv overrides api_key when set.
	APIKeyEnv = "NASA_API_KEY"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIKey:         defaultAPIKey,
		BaseURL:        defaultBaseURL,
		RangeDays:      defaultRangeDays,
		TimeoutSeconds: defaultTimeout,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing. NASA_API_KEY in the environment wins over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIKey         string `toml:"api_key"`
		BaseURL        string `toml:"base_url"`
		RangeDays      int    `toml:"range_days"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIKey); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if raw.RangeDays > 0 {
		cfg.RangeDays = raw.RangeDays
	}
	if raw.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = raw.TimeoutSeconds
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	applyEnv(&cfg)

	return cfg, nil
}

// Timeout returns the HTTP timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func applyEnv(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		cfg.APIKey = key
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Abs(expanded)
}
