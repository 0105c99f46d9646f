package sink

import (
	"io"
)

// WriterDisplay prints each line to an io.Writer followed by a newline.
type WriterDisplay struct {
	w io.Writer
}

// NewWriterDisplay creates a display writing to w.
func NewWriterDisplay(w io.Writer) *WriterDisplay {
	return &WriterDisplay{w: w}
}

// Display writes line and a trailing newline.
func (d *WriterDisplay) Display(line string) error {
	_, err := io.WriteString(d.w, line+"\n")
	return err
}
