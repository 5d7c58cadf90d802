package tools

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

type listDirTool struct {
	ctx Context
}

type listDirInput struct {
	Path string `json:"path" jsonschema:"required,description=Directory to list"`
}

func (t *listDirTool) name() string {
	return "list_dir"
}

func (t *listDirTool) definition() anthropic.ToolUnionParam {
	return toolDefinition[listDirInput]("list_dir", "List directory")
}

func (t *listDirTool) execute(input json.RawMessage) string {
	var args listDirInput
	if err := json.Unmarshal(input, &args); err != nil {
		return errorResult(err)
	}

	path := args.Path
	if path == "" {
		path = "."
	}
	t.ctx.debugf("[verbose] list_dir: path=%s", path)

	entries, err := os.ReadDir(path)
	if err != nil {
		return errorResult(err)
	}

	var lines []string
	for _, entry := range entries {
		marker := "-"
		if entry.IsDir() {
			marker = "d"
		}
		lines = append(lines, marker+" "+entry.Name())
	}
	return strings.Join(lines, "\n")
}
