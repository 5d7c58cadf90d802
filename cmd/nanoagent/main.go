// Package main provides the single-shot nanoagent CLI: one task in,
// one final answer out.
package main

import (
	"context"
	"fmt"
	"os"

	"nanoagent/pkg/agent"
	configpkg "nanoagent/pkg/config"
	"nanoagent/pkg/llm"
	loggerpkg "nanoagent/pkg/logger"
	"nanoagent/pkg/prompt"
	"nanoagent/pkg/tools"
)

// main is the program entry point.
func main() {
	cfg, task, err := parseCLIConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := configpkg.Validate(cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var appLogger loggerpkg.Logger = loggerpkg.NopLogger{}
	if cfg.Verbose {
		appLogger = loggerpkg.NewWriterLogger(os.Stderr)
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	systemPrompt := prompt.BuildSystemPrompt(prompt.LoadProjectContext(wd))

	client := llm.New(cfg, systemPrompt)
	registry := tools.New(tools.Context{Verbose: cfg.Verbose, Logger: appLogger})

	loop := agent.New(cfg, client, registry,
		agent.WithLogger(appLogger),
		agent.WithProgress(os.Stdout),
	)

	answer, err := loop.Run(context.Background(), task)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(answer)
}
