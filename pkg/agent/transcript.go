package agent

import "github.com/anthropics/anthropic-sdk-go"

// Transcript is the ordered, append-only conversation history. Turn
// order is the conversation order; the model reconstructs all context
// from it.
type Transcript struct {
	turns []anthropic.MessageParam
}

// NewTranscript seeds a transcript with the initial user prompt.
func NewTranscript(task string) *Transcript {
	return &Transcript{
		turns: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(task)),
		},
	}
}

// Append adds one turn at the end. Turns are never removed or reordered.
func (t *Transcript) Append(turn anthropic.MessageParam) {
	t.turns = append(t.turns, turn)
}

// Messages returns the turns in order for serialization.
func (t *Transcript) Messages() []anthropic.MessageParam {
	return t.turns
}

// Len reports the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}
