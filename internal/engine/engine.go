package engine

import (
	"bufio"
	"errors"
	"io"

	"github.com/dshills/ked/internal/engine/address"
	"github.com/dshills/ked/internal/engine/buffer"
	"github.com/dshills/ked/internal/engine/command"
	"github.com/dshills/ked/internal/logging"
)

// Display receives lines emitted by the print command.
type Display interface {
	// Display shows one line of text.
	Display(line string) error
}

// FileOpener opens named sinks for the write command.
type FileOpener interface {
	// OpenForWrite opens name for writing, truncating any existing content.
	OpenForWrite(name string) (io.WriteCloser, error)
}

// Mode is the input mode of the editor.
type Mode uint8

const (
	// ModeNormal accepts commands.
	ModeNormal Mode = iota
	// ModeAppending accepts literal text lines.
	ModeAppending
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAppending:
		return "appending"
	default:
		return "unknown"
	}
}

// appendTerminator ends append mode.
const appendTerminator = "."

// Editor interprets ed commands against a line buffer.
type Editor struct {
	buf      *buffer.Buffer
	current  int
	mode     Mode
	filename string

	display Display
	files   FileOpener
	logger  *logging.Logger
}

// New creates an editor with an empty buffer.
func New(display Display, files FileOpener, opts ...Option) *Editor {
	e := &Editor{
		buf:     buffer.New(),
		display: display,
		files:   files,
		logger:  logging.Null,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the current input mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Appending returns true while the editor is collecting text lines.
func (e *Editor) Appending() bool {
	return e.mode == ModeAppending
}

// Current returns the cursor line; 0 means before the first line.
func (e *Editor) Current() int {
	return e.current
}

// Lines returns a copy of the buffer content.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// Filename returns the remembered filename, if any.
func (e *Editor) Filename() (string, bool) {
	return e.filename, e.filename != ""
}

// Exec processes one input line.
// In normal mode the line is parsed and applied as a command; in append
// mode it is stored as text. ErrQuit is returned for the quit command.
func (e *Editor) Exec(line string) error {
	if e.mode == ModeAppending {
		e.appendLine(line)
		return nil
	}

	cmd, err := command.Parse(line)
	if err != nil {
		e.logger.Debug("parse %q: %v", line, err)
		return err
	}
	return e.Apply(cmd)
}

// Apply runs a parsed command in normal mode.
func (e *Editor) Apply(cmd command.Command) error {
	e.logger.Debug("apply %c (current=%d, lines=%d)", cmd.Verb(), e.current, e.buf.Len())

	switch c := cmd.(type) {
	case command.Append:
		return e.startAppend(c.Line)
	case command.Print:
		return e.print(c.Range)
	case command.Write:
		return e.write(c.Range, c.Filename)
	case command.Quit:
		return ErrQuit
	default:
		return ErrInvalidCommand
	}
}

// startAppend moves the cursor to the insertion point and enters append
// mode. Line 0 is a valid insertion point.
func (e *Editor) startAppend(l *address.Line) error {
	target := address.Current
	if l != nil {
		target = *l
	}

	switch target.Kind {
	case address.KindIndex:
		if target.N < 0 || target.N > e.buf.Len() {
			return ErrInvalidAddress
		}
		e.current = target.N
	case address.KindCurrent:
	case address.KindLast:
		e.current = e.buf.Len()
	}

	e.mode = ModeAppending
	return nil
}

// appendLine handles one line of append mode.
func (e *Editor) appendLine(line string) {
	if line == appendTerminator {
		e.mode = ModeNormal
		return
	}
	if err := e.buf.Insert(e.current, line); err != nil {
		e.logger.Warn("append at %d (lines=%d): %v", e.current, e.buf.Len(), err)
		return
	}
	e.current++
}

// print sends the addressed lines to the display. Without an address it
// prints the current line.
func (e *Editor) print(r *address.Range) error {
	span := address.Repeat(address.Current)
	if r != nil {
		span = *r
	}

	from, to, err := e.resolveRange(span)
	if err != nil {
		return err
	}

	return e.buf.Each(from, to, func(_ int, text string) error {
		if err := e.display.Display(text); err != nil {
			e.logger.Warn("display failed: %v", err)
			return &IOError{Op: "display", Err: err}
		}
		return nil
	})
}

// write stores the addressed lines in the named file. Without an address
// it writes the whole buffer; without a name it uses the remembered one.
func (e *Editor) write(r *address.Range, name string) (err error) {
	if name != "" {
		e.filename = name
	}
	if e.filename == "" {
		return ErrNoFilename
	}
	name = e.filename

	span := address.Range{From: address.Index(1), To: address.Last}
	if r != nil {
		span = *r
	}
	from, to, err := e.resolveRange(span)
	if err != nil {
		return err
	}

	f, err := e.files.OpenForWrite(name)
	if err != nil {
		e.logger.Warn("open %s: %v", name, err)
		return &IOError{Op: "open", Path: name, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("close %s: %v", name, cerr)
			err = errors.Join(err, &IOError{Op: "close", Path: name, Err: cerr})
		}
	}()

	w := bufio.NewWriter(f)
	var size int
	err = e.buf.Each(from, to, func(_ int, text string) error {
		n, werr := w.WriteString(text + "\n")
		size += n
		if werr != nil {
			return &IOError{Op: "write", Path: name, Err: werr}
		}
		return nil
	})
	if err != nil {
		e.logger.Warn("write %s: %v", name, err)
		return err
	}
	if ferr := w.Flush(); ferr != nil {
		e.logger.Warn("flush %s: %v", name, ferr)
		return &IOError{Op: "flush", Path: name, Err: ferr}
	}

	e.logger.Debug("wrote %d bytes (lines %d-%d) to %s", size, from, to, name)
	return nil
}

// resolve turns a line reference into a line number within 1..Len.
func (e *Editor) resolve(l address.Line) (int, error) {
	var n int
	switch l.Kind {
	case address.KindIndex:
		n = l.N
	case address.KindCurrent:
		n = e.current
	case address.KindLast:
		n = e.buf.Len()
	}
	if n < 1 || n > e.buf.Len() {
		return 0, ErrInvalidAddress
	}
	return n, nil
}

// resolveRange resolves both ends of r. A start after the end is a
// valid, empty span.
func (e *Editor) resolveRange(r address.Range) (from, to int, err error) {
	if from, err = e.resolve(r.From); err != nil {
		return 0, 0, err
	}
	if to, err = e.resolve(r.To); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}
