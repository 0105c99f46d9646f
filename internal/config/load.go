package config

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/ked/internal/config/loader"
)

// EnvPrefix is the prefix of every environment variable ked reads.
const EnvPrefix = "KED_"

// EnvMapping maps environment variables (without EnvPrefix) to settings.
func EnvMapping() map[string]loader.EnvVar {
	return map[string]loader.EnvVar{
		"PROMPT":       {Path: "prompt", Kind: loader.KindString},
		"VERBOSE":      {Path: "verbose", Kind: loader.KindBool},
		"LOG_LEVEL":    {Path: "log.level", Kind: loader.KindString},
		"LOG_FILE":     {Path: "log.file", Kind: loader.KindString},
		"HISTORY":      {Path: "history.enabled", Kind: loader.KindBool},
		"HISTORY_FILE": {Path: "history.file", Kind: loader.KindString},
	}
}

// Options controls Load.
type Options struct {
	// Path is the config file. Empty skips the file layer.
	Path string

	// FS reads the config file. Nil means the OS file system.
	FS loader.FileSystem

	// Env is the environment source. Nil skips the environment layer.
	Env loader.Loader
}

// Load resolves the configuration from defaults, the config file and the
// environment, in increasing precedence.
func Load(opts Options) (*Config, error) {
	merged := make(map[string]any)

	if opts.Path != "" {
		l, err := loader.ForPath(opts.FS, opts.Path)
		if err != nil {
			return nil, &LoadError{Source: opts.Path, Err: err}
		}
		m, err := l.Load()
		if err != nil {
			return nil, &LoadError{Source: opts.Path, Err: err}
		}
		merged = loader.DeepMerge(merged, m)
	}

	if opts.Env != nil {
		m, err := opts.Env.Load()
		if err != nil {
			return nil, &LoadError{Source: "environment", Err: err}
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if err := decode(merged, cfg); err != nil {
		src := opts.Path
		if src == "" {
			src = "environment"
		}
		return nil, &LoadError{Source: src, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the user config file and the KED_* environment.
func LoadDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	return Load(Options{
		Path: path,
		Env:  loader.NewEnvLoader(EnvPrefix, EnvMapping()),
	})
}

// decode overlays the settings in m onto cfg. Keys absent from m keep
// their current value.
func decode(m map[string]any, cfg *Config) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
