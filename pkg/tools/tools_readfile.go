package tools

import (
	"encoding/json"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
)

type readFileTool struct {
	ctx Context
}

type readFileInput struct {
	Path string `json:"path" jsonschema:"required,description=Path to the file to read"`
}

func (t *readFileTool) name() string {
	return "read_file"
}

func (t *readFileTool) definition() anthropic.ToolUnionParam {
	return toolDefinition[readFileInput]("read_file", "Read file")
}

func (t *readFileTool) execute(input json.RawMessage) string {
	var args readFileInput
	if err := json.Unmarshal(input, &args); err != nil {
		return errorResult(err)
	}

	path := args.Path
	if path == "" {
		// An absent path falls back to the current directory.
		path = "."
	}
	t.ctx.debugf("[verbose] read_file: path=%s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return errorResult(err)
	}
	return string(data)
}
