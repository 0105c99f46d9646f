package input

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInterrupt is returned when the user aborts the current line with
// Ctrl-C. The session continues with the next read.
var ErrInterrupt = errors.New("input: interrupted")

// Source reads input lines.
type Source interface {
	// ReadLine shows prompt, if the source is interactive or prompt is
	// non-empty, and returns the next line without its terminator.
	// io.EOF is returned once no more input is available.
	ReadLine(prompt string) (string, error)

	// Close releases the source.
	Close() error
}

func trimLine(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
