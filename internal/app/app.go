// Package app runs an interactive ked session. It wires the input source,
// the editor engine and its sinks together and owns the read-execute loop.
package app

import (
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/ked/internal/config"
	"github.com/dshills/ked/internal/engine"
	"github.com/dshills/ked/internal/input"
	"github.com/dshills/ked/internal/logging"
	"github.com/dshills/ked/internal/sink"
)

// Application is one editing session.
type Application struct {
	editor *engine.Editor
	source input.Source
	out    io.Writer
	errOut io.Writer

	prompt  string
	verbose bool

	reloads      <-chan *config.Config
	reloadErrors <-chan error

	sessionID string
	logger    *logging.Logger

	closeOnce sync.Once
	closeErr  error
}

// Options configures the application.
type Options struct {
	// Config supplies prompt and verbose. Nil means config.Default().
	Config *config.Config

	// Source provides input lines. When nil, In is read with a scanner.
	Source input.Source
	In     io.Reader

	// Out receives printed lines and prompts; Err receives error reports.
	// Both default to io.Discard.
	Out io.Writer
	Err io.Writer

	// Files opens write targets. Nil means the OS file system.
	Files engine.FileOpener

	// Logger receives diagnostics. Nil disables logging.
	Logger *logging.Logger

	// Reloads and ReloadErrors deliver configuration changes. They are
	// drained between input lines.
	Reloads      <-chan *config.Config
	ReloadErrors <-chan error
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = io.Discard
	}

	source := opts.Source
	if source == nil {
		if opts.In == nil {
			return nil, &InitError{Component: "input", Err: ErrNoInput}
		}
		source = input.NewScannerSource(opts.In, out)
	}

	files := opts.Files
	if files == nil {
		files = sink.OSFiles{}
	}

	base := opts.Logger
	if base == nil {
		base = logging.Null
	}
	sessionID := uuid.New().String()
	logger := base.WithField("session", sessionID)

	app := &Application{
		source:       source,
		out:          out,
		errOut:       errOut,
		prompt:       cfg.Prompt,
		verbose:      cfg.Verbose,
		reloads:      opts.Reloads,
		reloadErrors: opts.ReloadErrors,
		sessionID:    sessionID,
		logger:       logger.WithComponent("app"),
	}
	app.editor = engine.New(sink.NewWriterDisplay(out), files, engine.WithLogger(logger))

	app.logger.Info("session started")
	return app, nil
}

// Editor returns the session's editor.
func (app *Application) Editor() *engine.Editor {
	return app.editor
}

// SessionID returns the identifier attached to the session's log lines.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Prompt returns the prompt currently in effect.
func (app *Application) Prompt() string {
	return app.prompt
}

// Verbose returns true if errors are reported with their message.
func (app *Application) Verbose() bool {
	return app.verbose
}

// Shutdown releases the input source. It is safe to call more than once.
func (app *Application) Shutdown() error {
	app.closeOnce.Do(func() {
		app.closeErr = app.source.Close()
		app.logger.Info("session ended")
	})
	return app.closeErr
}
