// Anthropic Messages API client wrapper.
package llm

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	configpkg "nanoagent/pkg/config"
)

// Client performs one synchronous Messages exchange per call. There is
// no retry and no timeout beyond the transport default.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	system    string
}

// New builds a client from the runtime configuration and the static
// system instruction.
func New(cfg configpkg.Config, systemPrompt string) *Client {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		system:    systemPrompt,
	}
}

// Complete sends the full transcript plus the tool catalog and returns
// the decoded response, or the transport error unchanged.
func (c *Client) Complete(ctx context.Context, messages []anthropic.MessageParam, tools []anthropic.ToolUnionParam) (*anthropic.Message, error) {
	return c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: c.system}},
		Messages:  messages,
		Tools:     tools,
	})
}
