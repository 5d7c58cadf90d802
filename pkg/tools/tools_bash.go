package tools

import (
	"encoding/json"
	"os/exec"

	"github.com/anthropics/anthropic-sdk-go"
)

// bashOutputLimit caps tool output so one command cannot flood the
// conversation context.
const bashOutputLimit = 50_000

type bashTool struct {
	ctx Context
}

type bashInput struct {
	Command string `json:"command" jsonschema:"required,description=Command to execute"`
}

func (t *bashTool) name() string {
	return "bash"
}

func (t *bashTool) definition() anthropic.ToolUnionParam {
	return toolDefinition[bashInput]("bash", "Run command")
}

func (t *bashTool) execute(input json.RawMessage) string {
	var args bashInput
	if err := json.Unmarshal(input, &args); err != nil {
		return errorResult(err)
	}
	t.ctx.debugf("[verbose] bash: command_bytes=%d", len(args.Command))

	// Only stdout reaches the model; stderr and the exit code are
	// dropped. A failed command reads as whatever it printed.
	out, _ := exec.Command("sh", "-c", args.Command).Output()
	if len(out) > bashOutputLimit {
		out = out[:bashOutputLimit]
	}
	return string(out)
}
