package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	configpkg "nanoagent/pkg/config"
	loggerpkg "nanoagent/pkg/logger"
)

// ModelClient performs one model exchange per call.
type ModelClient interface {
	Complete(ctx context.Context, messages []anthropic.MessageParam, tools []anthropic.ToolUnionParam) (*anthropic.Message, error)
}

// ToolRunner advertises the tool catalog and executes invocations. Run
// never fails; every outcome is result text.
type ToolRunner interface {
	Definitions() []anthropic.ToolUnionParam
	Run(name string, input json.RawMessage) string
}

// Loop drives the turn-taking protocol: send transcript, interpret the
// stop condition, execute requested tools, feed results back, repeat.
type Loop struct {
	config     configpkg.Config
	client     ModelClient
	tools      ToolRunner
	transcript *Transcript

	logger   loggerpkg.Logger
	progress io.Writer
	verbose  bool
}

// New wires a loop from its collaborators.
func New(cfg configpkg.Config, client ModelClient, tools ToolRunner, opts ...Option) *Loop {
	cfg = configpkg.Normalize(cfg)
	d := deps{
		logger:   loggerpkg.NopLogger{},
		progress: io.Discard,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}

	return &Loop{
		config:   cfg,
		client:   client,
		tools:    tools,
		logger:   d.logger,
		progress: d.progress,
		verbose:  cfg.Verbose,
	}
}

// Run executes one task to completion and returns the model's final
// answer text. The transcript is created here and discarded with the
// loop; nothing persists across invocations.
//
// A transport error aborts the run with no partial result. MaxTurns
// zero keeps iterating until the model stops requesting tools.
func (l *Loop) Run(ctx context.Context, task string) (string, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return "", errors.New("task prompt is required")
	}
	l.transcript = NewTranscript(task)

	for turn := 0; l.config.MaxTurns == 0 || turn < l.config.MaxTurns; turn++ {
		l.debugf("[verbose] turn %d: sending %d message(s)", turn+1, l.transcript.Len())
		resp, err := l.client.Complete(ctx, l.transcript.Messages(), l.tools.Definitions())
		if err != nil {
			return "", err
		}

		// The raw block sequence becomes history even when it ends the
		// conversation.
		l.transcript.Append(resp.ToParam())

		if resp.StopReason != anthropic.StopReasonToolUse {
			l.debugf("[verbose] turn %d: stop_reason=%s, done", turn+1, resp.StopReason)
			return finalText(resp.Content), nil
		}

		results := l.runToolUses(resp.Content)
		l.transcript.Append(anthropic.NewUserMessage(results...))
	}

	return "", errors.New("max turns reached before the model produced a final answer")
}

// Transcript exposes the conversation history, mainly for inspection
// after Run returns.
func (l *Loop) Transcript() *Transcript {
	return l.transcript
}

// runToolUses executes every tool_use block in block order, one at a
// time, and returns one result block per invocation with the
// invocation id carried through. Result order matches block order.
func (l *Loop) runToolUses(blocks []anthropic.ContentBlockUnion) []anthropic.ContentBlockParamUnion {
	var results []anthropic.ContentBlockParamUnion
	for _, block := range blocks {
		use, ok := block.AsAny().(anthropic.ToolUseBlock)
		if !ok {
			continue
		}

		input, err := json.Marshal(use.Input)
		if err != nil {
			input = []byte("{}")
		}
		_, _ = fmt.Fprintf(l.progress, "> %s\n", use.Name)
		l.debugf("[verbose] tool call: name=%s, id=%s, input=%s", use.Name, use.ID, input)

		output := l.tools.Run(use.Name, input)
		_, _ = fmt.Fprintf(l.progress, "  %s\n", preview(output, 100))

		results = append(results, anthropic.ContentBlockParamUnion{
			OfToolResult: &anthropic.ToolResultBlockParam{
				ToolUseID: use.ID,
				Content: []anthropic.ToolResultBlockParamContentUnion{
					{OfText: &anthropic.TextBlockParam{Text: output}},
				},
			},
		})
	}
	return results
}

// finalText concatenates the text blocks of the final assistant turn in
// block order. Tool invocation blocks contribute nothing.
func finalText(blocks []anthropic.ContentBlockUnion) string {
	var sb strings.Builder
	for _, block := range blocks {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	return sb.String()
}

func preview(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func (l *Loop) debugf(format string, args ...any) {
	loggerpkg.Debugf(l.verbose, l.logger, format, args...)
}
