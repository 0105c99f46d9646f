package input

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterh/liner"
)

// LinerSource reads lines from the controlling terminal with line editing.
type LinerSource struct {
	state       *liner.State
	historyFile string
}

// LinerOption configures a LinerSource.
type LinerOption func(*LinerSource)

// WithHistoryFile loads history from path on creation and saves it on
// Close. An empty path disables persistence.
func WithHistoryFile(path string) LinerOption {
	return func(s *LinerSource) {
		s.historyFile = path
	}
}

// NewLinerSource takes over the terminal. Ctrl-C aborts the current line
// and is reported as ErrInterrupt.
func NewLinerSource(opts ...LinerOption) *LinerSource {
	s := &LinerSource{state: liner.NewLiner()}
	for _, opt := range opts {
		opt(s)
	}
	s.state.SetCtrlCAborts(true)

	if s.historyFile != "" {
		if f, err := os.Open(s.historyFile); err == nil {
			_, _ = s.state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return s
}

// ReadLine implements Source.
func (s *LinerSource) ReadLine(prompt string) (string, error) {
	line, err := s.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrInterrupt
		}
		return "", err
	}
	line = trimLine(line)
	if line != "" {
		s.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves history and restores the terminal.
func (s *LinerSource) Close() error {
	var saveErr error
	if s.historyFile != "" {
		saveErr = s.saveHistory()
	}
	return errors.Join(saveErr, s.state.Close())
}

func (s *LinerSource) saveHistory() error {
	f, err := os.Create(s.historyFile)
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	if _, err := s.state.WriteHistory(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("saving history: %w", err)
	}
	return f.Close()
}
