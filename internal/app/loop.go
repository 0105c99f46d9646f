package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/dshills/ked/internal/config"
	"github.com/dshills/ked/internal/engine"
	"github.com/dshills/ked/internal/input"
)

// errorMarker is printed for every failed command unless verbose.
const errorMarker = "?"

// Run reads and executes lines until the input ends or the quit command is
// given. It returns nil at end of input and ErrQuit after quit. Command
// failures are reported and do not stop the loop; only a failing input
// source does.
func (app *Application) Run() error {
	for {
		app.applyReloads()

		prompt := ""
		if !app.editor.Appending() {
			prompt = app.prompt
		}

		line, err := app.source.ReadLine(prompt)
		switch {
		case errors.Is(err, io.EOF):
			app.logger.Debug("end of input")
			return nil
		case errors.Is(err, input.ErrInterrupt):
			app.report(err)
			continue
		case err != nil:
			app.logger.Error("input: %v", err)
			return &ReadError{Err: err}
		}

		if err := app.editor.Exec(line); err != nil {
			if errors.Is(err, engine.ErrQuit) {
				app.logger.Debug("quit")
				return ErrQuit
			}
			app.report(err)
		}
	}
}

// report prints the error marker, or the message in verbose mode.
func (app *Application) report(err error) {
	app.logger.Debug("command failed: %v", err)
	msg := errorMarker
	if app.verbose {
		msg = err.Error()
	}
	if _, werr := fmt.Fprintln(app.errOut, msg); werr != nil {
		app.logger.Warn("reporting error: %v", werr)
	}
}

// applyReloads applies every pending configuration change without
// blocking.
func (app *Application) applyReloads() {
	for {
		select {
		case cfg, ok := <-app.reloads:
			if !ok {
				app.reloads = nil
				continue
			}
			app.applyConfig(cfg)
		case err, ok := <-app.reloadErrors:
			if !ok {
				app.reloadErrors = nil
				continue
			}
			app.logger.Warn("config reload failed: %v", err)
		default:
			return
		}
	}
}

func (app *Application) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	app.prompt = cfg.Prompt
	app.verbose = cfg.Verbose
	app.logger.Info("config reloaded (prompt=%q, verbose=%t)", cfg.Prompt, cfg.Verbose)
}
