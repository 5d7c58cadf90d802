// Tests for configuration defaults, normalization, and file merging.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestNormalizeDefaults verifies empty fields fall back to defaults.
func TestNormalizeDefaults(t *testing.T) {
	cfg := Normalize(Config{Model: "  ", MaxTokens: 0, MaxTurns: -3})
	if cfg.Model != DefaultModel {
		t.Fatalf("expected default model, got %q", cfg.Model)
	}
	if cfg.MaxTokens != 8192 {
		t.Fatalf("expected default max tokens, got %d", cfg.MaxTokens)
	}
	if cfg.MaxTurns != 0 {
		t.Fatalf("expected unbounded turns, got %d", cfg.MaxTurns)
	}
}

// TestNormalizeTrimsBaseURL ensures trailing slashes are stripped.
func TestNormalizeTrimsBaseURL(t *testing.T) {
	cfg := Normalize(Config{BaseURL: " https://api.anthropic.com/ "})
	if cfg.BaseURL != "https://api.anthropic.com" {
		t.Fatalf("unexpected base url: %q", cfg.BaseURL)
	}
}

// TestValidateRequiresAPIKey confirms a missing key is fatal.
func TestValidateRequiresAPIKey(t *testing.T) {
	if err := Validate(Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
	if err := Validate(Config{APIKey: "sk-test"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestLoadFileMerges checks file values override existing ones.
func TestLoadFileMerges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".nanoagent.yaml")
	content := `model: claude-opus-test
base_url: https://proxy.example.com
max_tokens: 4096
max_turns: 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadFile(DefaultConfig(), path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Model != "claude-opus-test" {
		t.Fatalf("expected file model, got %q", cfg.Model)
	}
	if cfg.BaseURL != "https://proxy.example.com" {
		t.Fatalf("expected file base url, got %q", cfg.BaseURL)
	}
	if cfg.MaxTokens != 4096 {
		t.Fatalf("expected file max tokens, got %d", cfg.MaxTokens)
	}
	if cfg.MaxTurns != 25 {
		t.Fatalf("expected file max turns, got %d", cfg.MaxTurns)
	}
}

// TestLoadFileMissingIsNotError verifies absent files are ignored.
func TestLoadFileMissingIsNotError(t *testing.T) {
	cfg, err := LoadFile(DefaultConfig(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("config changed unexpectedly: %+v", cfg)
	}
}

// TestLoadFileMalformed ensures bad YAML surfaces an error.
func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".nanoagent.yaml")
	if err := os.WriteFile(path, []byte("model: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	if _, err := LoadFile(DefaultConfig(), path); err == nil {
		t.Fatal("expected parse error")
	}
}
