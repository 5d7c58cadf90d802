// System prompt assembly and project context discovery.
package prompt

import (
	"os"
	"path/filepath"
	"strings"
)

// contextFileNames are probed in order; the first readable file wins.
var contextFileNames = []string{"AGENT.md", ".agent.md", "CLAUDE.md", ".claude.md"}

// BuildSystemPrompt constructs the static system instruction, appending
// project context when present.
func BuildSystemPrompt(projectContext string) string {
	var sb strings.Builder
	sb.WriteString("You are a coding assistant. Use tools to help.")

	if strings.TrimSpace(projectContext) != "" {
		sb.WriteString("\n\n## Project Context\n")
		sb.WriteString(strings.TrimSpace(projectContext))
	}

	return sb.String()
}

// LoadProjectContext returns the contents of the first agent context
// file found under root, or an empty string when none exists.
func LoadProjectContext(root string) string {
	for _, name := range contextFileNames {
		content, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		return string(content)
	}
	return ""
}
