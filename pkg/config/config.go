package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultModel is used when neither the environment nor the config file
// names a model.
const DefaultModel = "claude-sonnet-4-20250514"

// Config holds all runtime configuration for one agent invocation.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// MaxTokens is the per-request output budget sent to the model.
	MaxTokens int64

	// MaxTurns bounds model/tool iterations. Zero means unbounded: the
	// loop runs until the model stops requesting tools.
	MaxTurns int

	Verbose bool
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Model:     DefaultModel,
		MaxTokens: 8192,
		MaxTurns:  0,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 8192
	}
	if cfg.MaxTurns < 0 {
		cfg.MaxTurns = 0
	}
	return cfg
}

// Validate reports fatal configuration errors before any network activity.
func Validate(cfg Config) error {
	if cfg.APIKey == "" {
		return errors.New("API key is not set")
	}
	return nil
}

// fileConfig mirrors the optional .nanoagent.yaml project file.
type fileConfig struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	MaxTokens int64  `yaml:"max_tokens"`
	MaxTurns  *int   `yaml:"max_turns"`
}

// LoadFile merges settings from a YAML file into cfg. A missing file is
// not an error; a malformed one is.
func LoadFile(cfg Config, path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if strings.TrimSpace(fc.Model) != "" {
		cfg.Model = fc.Model
	}
	if strings.TrimSpace(fc.BaseURL) != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.MaxTokens > 0 {
		cfg.MaxTokens = fc.MaxTokens
	}
	if fc.MaxTurns != nil {
		cfg.MaxTurns = *fc.MaxTurns
	}
	return cfg, nil
}
