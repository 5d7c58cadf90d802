package agent

import (
	"io"

	loggerpkg "nanoagent/pkg/logger"
)

// Option configures optional runtime dependencies for Loop.
type Option func(*deps)

type deps struct {
	logger   loggerpkg.Logger
	progress io.Writer
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *deps) {
		d.logger = l
	}
}

// WithProgress sets the writer that receives per-tool-call progress
// lines during execution.
func WithProgress(w io.Writer) Option {
	return func(d *deps) {
		d.progress = w
	}
}
