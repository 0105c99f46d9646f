package engine

import (
	"errors"
	"fmt"

	"github.com/dshills/ked/internal/engine/address"
	"github.com/dshills/ked/internal/engine/command"
)

// Errors returned by Exec.
var (
	// ErrInvalidAddress indicates a malformed or out-of-range address.
	ErrInvalidAddress = address.ErrInvalidAddress

	// ErrInvalidCommand indicates an unrecognized command verb.
	ErrInvalidCommand = command.ErrInvalidCommand

	// ErrNoCommand indicates a line without a command verb.
	ErrNoCommand = command.ErrNoCommand

	// ErrNoFilename indicates a write with no filename given or remembered.
	ErrNoFilename = errors.New("no current filename")

	// ErrIO indicates a display or file sink failure.
	// Failures are reported as *IOError, which matches ErrIO.
	ErrIO = errors.New("i/o failure")

	// ErrQuit signals that the session should end. It is not a failure.
	ErrQuit = errors.New("quit requested")
)

// IOError describes a failed display or file sink operation.
type IOError struct {
	Op   string // "display", "open", "write", "flush" or "close"
	Path string // file name; empty for display
	Err  error  // underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
