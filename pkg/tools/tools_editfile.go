package tools

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

type editFileTool struct {
	ctx Context
}

type editFileInput struct {
	Path      string `json:"path" jsonschema:"required,description=Path to the file to edit"`
	OldString string `json:"old_string" jsonschema:"required,description=Exact text to find"`
	NewString string `json:"new_string" jsonschema:"required,description=Text to replace it with"`
}

func (t *editFileTool) name() string {
	return "edit_file"
}

func (t *editFileTool) definition() anthropic.ToolUnionParam {
	return toolDefinition[editFileInput]("edit_file", "Edit file")
}

func (t *editFileTool) execute(input json.RawMessage) string {
	var args editFileInput
	if err := json.Unmarshal(input, &args); err != nil {
		return errorResult(err)
	}
	t.ctx.debugf("[verbose] edit_file: path=%s, old_bytes=%d, new_bytes=%d", args.Path, len(args.OldString), len(args.NewString))

	data, err := os.ReadFile(args.Path)
	if err != nil {
		return errorResult(err)
	}

	content := string(data)
	if !strings.Contains(content, args.OldString) {
		// Not an I/O error: the model can re-read the file and retry.
		return "old_string not found"
	}

	updated := strings.Replace(content, args.OldString, args.NewString, 1)
	if err := os.WriteFile(args.Path, []byte(updated), 0o644); err != nil {
		return errorResult(err)
	}
	return "OK"
}
