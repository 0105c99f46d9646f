package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/ked.yaml", `
prompt: "> "
history:
  enabled: true
  file: /home/u/.ked_history
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/ked.yaml").Load()
	require.NoError(t, err)
	assert.Equal(t, "> ", config["prompt"])

	history, ok := config["history"].(map[string]any)
	require.True(t, ok, "history is %T", config["history"])
	assert.Equal(t, true, history["enabled"])
	assert.Equal(t, "/home/u/.ked_history", history["file"])
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	config, err := NewYAMLLoaderWithFS(NewMemFS(), "/ked.yml").Load()
	require.NoError(t, err)
	assert.Nil(t, config)
}

func TestYAMLLoader_ParseError(t *testing.T) {
	_, err := NewYAMLLoader("unused").LoadFromReader(strings.NewReader("prompt: [unclosed\n"))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "<reader>", perr.Path)
	assert.Contains(t, perr.Error(), "parse error in <reader>")
}
