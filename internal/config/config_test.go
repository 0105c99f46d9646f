package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ked/internal/config/loader"
	"github.com/dshills/ked/internal/logging"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

type mapEnv map[string]any

func (m mapEnv) Load() (map[string]any, error) { return m, nil }

type failingEnv struct{ err error }

func (f failingEnv) Load() (map[string]any, error) { return nil, f.err }

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "", cfg.Prompt)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel())
}

func TestLoadNoSources(t *testing.T) {
	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	fsys := memFS{"/ked.toml": `
prompt = "* "
verbose = true

[log]
level = "debug"
`}
	cfg, err := Load(Options{Path: "/ked.toml", FS: fsys})
	require.NoError(t, err)

	assert.Equal(t, "* ", cfg.Prompt)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.True(t, cfg.History.Enabled)
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/ked.yaml": "prompt: \"> \"\nhistory:\n  enabled: false\n"}
	cfg, err := Load(Options{Path: "/ked.yaml", FS: fsys})
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(Options{Path: "/nope.toml", FS: memFS{}})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fsys := memFS{"/ked.toml": "prompt = \"file\"\n[log]\nlevel = \"warn\"\nfile = \"a.log\"\n"}
	env := mapEnv{
		"prompt": "env",
		"log":    map[string]any{"level": "error"},
	}

	cfg, err := Load(Options{Path: "/ked.toml", FS: fsys, Env: env})
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.Prompt)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "a.log", cfg.Log.File)
}

func TestLoadEnvLoader(t *testing.T) {
	t.Setenv("KED_PROMPT", ": ")
	t.Setenv("KED_VERBOSE", "on")
	t.Setenv("KED_HISTORY", "no")

	cfg, err := Load(Options{Env: loader.NewEnvLoader(EnvPrefix, EnvMapping())})
	require.NoError(t, err)
	assert.Equal(t, ": ", cfg.Prompt)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.History.Enabled)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"unsupported format", Options{Path: "/ked.json", FS: memFS{"/ked.json": "{}"}}},
		{"syntax error", Options{Path: "/ked.toml", FS: memFS{"/ked.toml": "prompt = = 1"}}},
		{"unknown key", Options{Path: "/ked.toml", FS: memFS{"/ked.toml": "promt = \"x\""}}},
		{"wrong type", Options{Path: "/ked.toml", FS: memFS{"/ked.toml": "verbose = \"very\""}}},
		{"env failure", Options{Env: failingEnv{err: errors.New("boom")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.opts)
			var lerr *LoadError
			assert.ErrorAs(t, err, &lerr)
		})
	}
}

func TestLoadParseErrorIsReachable(t *testing.T) {
	_, err := Load(Options{Path: "/ked.toml", FS: memFS{"/ked.toml": "prompt = = 1"}})
	var perr *loader.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "/ked.toml", perr.Path)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLevel)

	cfg.Log.Level = "WARN"
	assert.NoError(t, cfg.Validate())
}

func TestLoadValidates(t *testing.T) {
	_, err := Load(Options{Env: mapEnv{"log": map[string]any{"level": "loud"}}})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "ked", "ked.toml"), DefaultPath())
}

func TestLoadDefaultMissingFile(t *testing.T) {
	t.Setenv("KED_LOG_LEVEL", "debug")
	cfg, err := LoadDefault(filepath.Join(t.TempDir(), "ked.toml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}
