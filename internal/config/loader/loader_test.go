package loader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected any
	}{
		{"ked.toml", &TOMLLoader{}},
		{"KED.TOML", &TOMLLoader{}},
		{"ked.yaml", &YAMLLoader{}},
		{"conf/ked.yml", &YAMLLoader{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(NewMemFS(), tt.path)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, l)
		})
	}
}

func TestForPathUnsupported(t *testing.T) {
	for _, path := range []string{"ked.json", "ked", ""} {
		_, err := ForPath(nil, path)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "path %q: %v", path, err)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"prompt": "",
		"log":    map[string]any{"level": "info", "file": "a.log"},
	}
	src := map[string]any{
		"prompt": "* ",
		"log":    map[string]any{"level": "debug"},
		"extra":  true,
	}

	got := DeepMerge(dst, src)
	assert.Equal(t, map[string]any{
		"prompt": "* ",
		"log":    map[string]any{"level": "debug", "file": "a.log"},
		"extra":  true,
	}, got)
}

func TestDeepMergeNil(t *testing.T) {
	assert.Equal(t, map[string]any{"a": 1}, DeepMerge(nil, map[string]any{"a": 1}))
	assert.Equal(t, map[string]any{"a": 1}, DeepMerge(map[string]any{"a": 1}, nil))
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Path: "ked.toml", Line: 3, Column: 7, Message: "bad"}
	assert.Equal(t, "parse error in ked.toml at line 3, column 7: bad", err.Error())

	err = &ParseError{Path: "ked.yaml", Message: "bad"}
	assert.Equal(t, "parse error in ked.yaml: bad", err.Error())
}
