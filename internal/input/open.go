package input

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Options selects and configures the source returned by Open.
type Options struct {
	// In and Out are the session streams. Interactive mode is only used
	// when both are the process's terminal.
	In  io.Reader
	Out io.Writer

	// History enables the history file for interactive sources.
	History     bool
	HistoryFile string
}

// Open returns a LinerSource when In and Out are an interactive terminal
// and a ScannerSource otherwise.
func Open(opts Options) Source {
	if Interactive(opts.In, opts.Out) {
		var lopts []LinerOption
		if opts.History {
			lopts = append(lopts, WithHistoryFile(opts.HistoryFile))
		}
		return NewLinerSource(lopts...)
	}
	return NewScannerSource(opts.In, opts.Out)
}

// Interactive reports whether in is os.Stdin, out is os.Stdout and both
// are terminals.
func Interactive(in io.Reader, out io.Writer) bool {
	if in != os.Stdin || out != os.Stdout {
		return false
	}
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

// IsTerminal reports whether f refers to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
