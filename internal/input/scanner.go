package input

import (
	"bufio"
	"errors"
	"io"
)

// ScannerSource reads lines of any length from an io.Reader.
type ScannerSource struct {
	r   *bufio.Reader
	out io.Writer
	in  io.Reader
	eof bool
}

// NewScannerSource creates a source reading from r. Prompts are written to
// out; a nil out drops them.
func NewScannerSource(r io.Reader, out io.Writer) *ScannerSource {
	return &ScannerSource{r: bufio.NewReader(r), out: out, in: r}
}

// ReadLine implements Source. A final line without a terminator is
// returned before io.EOF.
func (s *ScannerSource) ReadLine(prompt string) (string, error) {
	if prompt != "" && s.out != nil {
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return "", err
		}
	}
	if s.eof {
		return "", io.EOF
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		s.eof = true
		if line == "" {
			return "", io.EOF
		}
	}
	return trimLine(line), nil
}

// Close closes the underlying reader if it is an io.Closer.
func (s *ScannerSource) Close() error {
	if c, ok := s.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
