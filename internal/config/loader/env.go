package loader

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Kind is the value type of an environment variable.
type Kind int

const (
	// KindString keeps the value verbatim.
	KindString Kind = iota
	// KindBool accepts true/false, yes/no, on/off and 1/0.
	KindBool
)

// EnvVar maps one environment variable to a config path.
type EnvVar struct {
	// Path is the dot-separated config key, e.g. "log.level".
	Path string
	Kind Kind
}

// EnvLoader loads configuration from environment variables.
// Only mapped variables are read; other variables with the prefix are
// ignored.
type EnvLoader struct {
	prefix  string
	mapping map[string]EnvVar
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader for mapping. Mapping keys are variable
// names without prefix, so "PROMPT" with prefix "KED_" reads KED_PROMPT.
func NewEnvLoader(prefix string, mapping map[string]EnvVar) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		lookup:  os.LookupEnv,
	}
}

// Vars returns the full variable names read by the loader, sorted.
func (l *EnvLoader) Vars() []string {
	names := make([]string, 0, len(l.mapping))
	for name := range l.mapping {
		names = append(names, l.prefix+name)
	}
	sort.Strings(names)
	return names
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for name, v := range l.mapping {
		env := l.prefix + name
		raw, ok := l.lookup(env)
		if !ok {
			continue
		}
		val, err := parseValue(v.Kind, raw)
		if err != nil {
			return nil, fmt.Errorf("environment variable %s: %w", env, err)
		}
		setByPath(config, v.Path, val)
	}
	return config, nil
}

func parseValue(kind Kind, s string) (any, error) {
	if kind != KindBool {
		return s, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	}
	return nil, fmt.Errorf("invalid boolean %q", s)
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
