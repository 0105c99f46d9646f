package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ked/internal/config"
)

const waitTimeout = 5 * time.Second

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	reload := func() (*config.Config, error) {
		return config.Load(config.Options{Path: path})
	}
	w, err := New(path, reload, WithDelay(50*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ked.toml")
	writeFile(t, path, "prompt = \"a\"\n")
	w := newTestWatcher(t, path)

	writeFile(t, path, "prompt = \"b\"\nverbose = true\n")

	// A truncating write can be observed half done; wait for the final state.
	deadline := time.After(waitTimeout)
	for {
		select {
		case cfg := <-w.Updates():
			require.NotNil(t, cfg)
			if cfg.Prompt != "b" {
				continue
			}
			assert.True(t, cfg.Verbose)
			return
		case err := <-w.Errors():
			t.Fatalf("unexpected error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcherSeesCreatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ked.toml")
	w := newTestWatcher(t, path)

	writeFile(t, path, "prompt = \"new\"\n")

	deadline := time.After(waitTimeout)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Prompt == "new" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ked.toml")
	w := newTestWatcher(t, path)

	writeFile(t, filepath.Join(dir, "other.toml"), "prompt = \"x\"\n")

	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherReportsReloadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ked.toml")
	writeFile(t, path, "prompt = \"a\"\n")
	w := newTestWatcher(t, path)

	writeFile(t, path, "prompt = = broken\n")

	deadline := time.After(waitTimeout)
	for {
		select {
		case err := <-w.Errors():
			var lerr *config.LoadError
			assert.True(t, errors.As(err, &lerr), "got %v", err)
			return
		case <-w.Updates():
		case <-deadline:
			t.Fatal("timed out waiting for error")
		}
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ked.toml")
	w, err := New(path, func() (*config.Config, error) { return config.Default(), nil })
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Updates()
	assert.False(t, ok)
}

func TestNewErrors(t *testing.T) {
	_, err := New("", nil)
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = New(filepath.Join(t.TempDir(), "missing", "ked.toml"), nil)
	assert.Error(t, err)
}
