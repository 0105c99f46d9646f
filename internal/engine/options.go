package engine

import (
	"github.com/dshills/ked/internal/engine/buffer"
	"github.com/dshills/ked/internal/logging"
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithLines seeds the buffer with initial content and places the cursor
// on the last line.
func WithLines(lines ...string) Option {
	return func(e *Editor) {
		e.buf = buffer.New(buffer.WithLines(lines...))
		e.current = e.buf.Len()
	}
}

// WithLogger sets the logger used for command diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l.WithComponent("engine")
		}
	}
}
