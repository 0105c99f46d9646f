package sink

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"
	"sync"
)

// DefaultFileMode is the permission used for newly created files.
const DefaultFileMode fs.FileMode = 0o644

// ErrClosed is returned when writing to a closed MemFile.
var ErrClosed = errors.New("sink: file already closed")

// OSFiles opens write sinks on the real file system.
// Existing files are truncated.
type OSFiles struct {
	// Mode is the permission for created files. Zero means DefaultFileMode.
	Mode fs.FileMode
}

// OpenForWrite creates or truncates name.
func (o OSFiles) OpenForWrite(name string) (io.WriteCloser, error) {
	mode := o.Mode
	if mode == 0 {
		mode = DefaultFileMode
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// MemFiles is an in-memory FileOpener.
// Each open replaces the previous content of the name.
type MemFiles struct {
	mu    sync.Mutex
	files map[string]*MemFile
	opens int

	// OpenErr, when set, is returned by every OpenForWrite call.
	OpenErr error
	// WriteErr, when set, is returned by every write to an opened file.
	WriteErr error
	// CloseErr, when set, is returned by every Close.
	CloseErr error
}

// NewMemFiles creates an empty in-memory file set.
func NewMemFiles() *MemFiles {
	return &MemFiles{files: make(map[string]*MemFile)}
}

// OpenForWrite opens name, discarding any previous content.
func (m *MemFiles) OpenForWrite(name string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.opens++
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	f := &MemFile{name: name, writeErr: m.WriteErr, closeErr: m.CloseErr}
	m.files[name] = f
	return f, nil
}

// File returns the file stored under name.
func (m *MemFiles) File(name string) (*MemFile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[name]
	return f, ok
}

// Content returns the bytes written to name.
func (m *MemFiles) Content(name string) (string, bool) {
	f, ok := m.File(name)
	if !ok {
		return "", false
	}
	return f.String(), true
}

// Names returns the stored file names in sorted order.
func (m *MemFiles) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Opens returns the number of OpenForWrite calls, failed ones included.
func (m *MemFiles) Opens() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opens
}

// MemFile is a write sink held in memory.
type MemFile struct {
	mu       sync.Mutex
	name     string
	buf      bytes.Buffer
	closed   bool
	writeErr error
	closeErr error
}

// Write appends p to the file.
func (f *MemFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0, ErrClosed
	}
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.buf.Write(p)
}

// Close marks the file closed.
func (f *MemFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.closed = true
	return f.closeErr
}

// Closed returns true once Close has been called.
func (f *MemFile) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// String returns the content written so far.
func (f *MemFile) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.String()
}
