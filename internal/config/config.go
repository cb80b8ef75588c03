// Package config loads application configuration from <data-dir>/config.yaml
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	// Language is the startup UI language ("en" or "ar").
	Language string `yaml:"language"`
	// DataDir holds the SQLite store, logs, and config. Defaults to ~/.sanad.
	DataDir string `yaml:"data_dir"`

	AI      AIConfig      `yaml:"ai"`
	Logging LoggingConfig `yaml:"logging"`
}

// AIConfig configures the remote text-completion capability.
type AIConfig struct {
	Provider string `yaml:"provider"` // openai, gemini
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`

	// TimeoutSeconds bounds a single completion call.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	MaxTokens            int     `yaml:"max_tokens"`
	Temperature          float64 `yaml:"temperature"`
	TranslateMaxTokens   int     `yaml:"translate_max_tokens"`
	TranslateTemperature float64 `yaml:"translate_temperature"`
}

// LoggingConfig controls the categorized file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"`
}

// Defaults mirrored from the hosted deployment.
const (
	DefaultModel                = "gpt-4o-mini"
	DefaultTimeoutSeconds       = 10
	DefaultMaxTokens            = 240
	DefaultTemperature          = 0.4
	DefaultTranslateMaxTokens   = 220
	DefaultTranslateTemperature = 0.2
)

// DefaultDataDir returns ~/.sanad, or a relative .sanad when the home
// directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sanad"
	}
	return filepath.Join(home, ".sanad")
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Language: "en",
		DataDir:  DefaultDataDir(),
		AI: AIConfig{
			Model:                DefaultModel,
			TimeoutSeconds:       DefaultTimeoutSeconds,
			MaxTokens:            DefaultMaxTokens,
			Temperature:          DefaultTemperature,
			TranslateMaxTokens:   DefaultTranslateMaxTokens,
			TranslateTemperature: DefaultTranslateTemperature,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads config.yaml from dir (a missing file is fine), applies defaults,
// and then environment overrides. Passing dir="" uses the default data dir.
func Load(dir string) (*Config, error) {
	cfg := Default()
	if dir != "" {
		cfg.DataDir = dir
	}

	path := filepath.Join(cfg.DataDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = "en"
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	if c.AI.Model == "" {
		c.AI.Model = DefaultModel
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.AI.MaxTokens <= 0 {
		c.AI.MaxTokens = DefaultMaxTokens
	}
	if c.AI.Temperature <= 0 {
		c.AI.Temperature = DefaultTemperature
	}
	if c.AI.TranslateMaxTokens <= 0 {
		c.AI.TranslateMaxTokens = DefaultTranslateMaxTokens
	}
	if c.AI.TranslateTemperature <= 0 {
		c.AI.TranslateTemperature = DefaultTranslateTemperature
	}
}

// applyEnv layers environment variables over the file values.
// Priority: SANAD_* > provider-specific keys > config.yaml.
func (c *Config) applyEnv() {
	if v := os.Getenv("SANAD_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("SANAD_LANG"); v != "" {
		c.Language = strings.ToLower(v)
	}
	if v := os.Getenv("SANAD_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.AI.APIKey == "" {
		c.AI.APIKey = strings.TrimSpace(v)
		if c.AI.Provider == "" {
			c.AI.Provider = "openai"
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && c.AI.APIKey == "" {
		c.AI.APIKey = strings.TrimSpace(v)
		if c.AI.Provider == "" {
			c.AI.Provider = "gemini"
		}
	}
}

// Timeout returns the completion timeout as a duration.
func (a AIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// HasCredential reports whether a remote credential is configured. Without
// one the assist pipeline skips the network entirely.
func (a AIConfig) HasCredential() bool {
	return strings.TrimSpace(a.APIKey) != ""
}

// StorePath returns the SQLite store location inside the data directory.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "sanad.db")
}

// MaskKey renders a credential for logs without exposing it.
func MaskKey(k string) string {
	if k == "" {
		return "<none>"
	}
	if len(k) < 12 {
		return "…"
	}
	return k[:7] + "…" + k[len(k)-4:]
}
