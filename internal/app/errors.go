package app

import (
	"errors"

	"github.com/dshills/ked/internal/engine"
)

// Application errors.
var (
	// ErrQuit signals that the session ended with the quit command.
	ErrQuit = engine.ErrQuit

	// ErrNoInput indicates Options carried neither a Source nor an In reader.
	ErrNoInput = errors.New("no input source")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// ReadError wraps a failure of the input source.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "reading input: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
