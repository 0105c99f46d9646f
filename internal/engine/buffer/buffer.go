package buffer

import "errors"

// ErrLineOutOfRange is returned for a line or position outside the buffer.
var ErrLineOutOfRange = errors.New("line out of range")

// Buffer is an ordered sequence of text lines.
type Buffer struct {
	lines []string
}

// New creates a new buffer, empty unless seeded with WithLines.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Lines returns a copy of all lines in document order.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Insert places text after line at, shifting later lines down.
// at ranges over 0..Len(); 0 inserts before the first line.
func (b *Buffer) Insert(at int, text string) error {
	if at < 0 || at > len(b.lines) {
		return ErrLineOutOfRange
	}
	b.lines = append(b.lines, "")
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = text
	return nil
}

// Each calls fn for every line from through to (1-based, inclusive) in
// document order. Both bounds must name existing lines; when from is
// after to the span is empty and fn is not called. Each stops at the
// first error fn returns.
func (b *Buffer) Each(from, to int, fn func(n int, text string) error) error {
	if !b.valid(from) || !b.valid(to) {
		return ErrLineOutOfRange
	}
	for n := from; n <= to; n++ {
		if err := fn(n, b.lines[n-1]); err != nil {
			return err
		}
	}
	return nil
}

func (b *Buffer) valid(n int) bool {
	return n >= 1 && n <= len(b.lines)
}
