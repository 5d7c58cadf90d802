package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"

	configpkg "nanoagent/pkg/config"
)

const defaultConfigFile = ".nanoagent.yaml"

// parseCLIConfig builds the runtime config from, in increasing
// precedence: defaults, the optional YAML project file, environment
// variables, and flags. The remaining arguments join into the task.
func parseCLIConfig() (configpkg.Config, string, error) {
	_ = godotenv.Load()

	cfg := configpkg.DefaultConfig()

	configFile := flag.String("config", defaultConfigFile, "Path to a YAML config file")
	model := flag.String("model", "", "Model identifier (overrides MODEL)")
	maxTurns := flag.Int("max_turns", cfg.MaxTurns, "Max model/tool turns (0 = unbounded)")
	verbose := flag.Bool("verbose", false, "Verbose diagnostics on stderr")
	flag.Parse()

	cfg, err := configpkg.LoadFile(cfg, *configFile)
	if err != nil {
		return configpkg.Config{}, "", err
	}

	cfg.APIKey = firstEnv("ANTHROPIC_API_KEY", "ANTHROPIC_AUTH_TOKEN")
	if v := strings.TrimSpace(os.Getenv("ANTHROPIC_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("MODEL")); v != "" {
		cfg.Model = v
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if strings.TrimSpace(*model) != "" {
		cfg.Model = *model
	}
	if set["max_turns"] {
		cfg.MaxTurns = *maxTurns
	}
	cfg.Verbose = *verbose
	cfg = configpkg.Normalize(cfg)

	task := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if task == "" {
		return configpkg.Config{}, "", errors.New(`usage: nanoagent [flags] "your task"`)
	}
	return cfg, task, nil
}

// firstEnv returns the first non-empty environment value among keys.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
