package tools

import (
	"encoding/json"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
)

type writeFileTool struct {
	ctx Context
}

type writeFileInput struct {
	Path    string `json:"path" jsonschema:"required,description=Path to write the file to"`
	Content string `json:"content" jsonschema:"required,description=Full file contents to write"`
}

func (t *writeFileTool) name() string {
	return "write_file"
}

func (t *writeFileTool) definition() anthropic.ToolUnionParam {
	return toolDefinition[writeFileInput]("write_file", "Write file")
}

func (t *writeFileTool) execute(input json.RawMessage) string {
	var args writeFileInput
	if err := json.Unmarshal(input, &args); err != nil {
		return errorResult(err)
	}
	t.ctx.debugf("[verbose] write_file: path=%s, bytes=%d", args.Path, len(args.Content))

	if err := os.WriteFile(args.Path, []byte(args.Content), 0o644); err != nil {
		return errorResult(err)
	}
	return "OK"
}
