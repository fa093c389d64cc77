package mdsource

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = "# My house\n" +
	"\n" +
	"Some prose with a `Space` in it.\n" +
	"\n" +
	"```simple\n" +
	"Space {\n" +
	"    name: \"kitchen\",\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"```go\n" +
	"Space { name: \"not a model\" }\n" +
	"```\n" +
	"\n" +
	"```SIMPLE\n" +
	"Building { name: \"home\" }\n" +
	"```\n"

func TestExtract(t *testing.T) {
	out := Extract([]byte(doc))

	require.Len(t, out, len(doc))
	assert.Equal(t, strings.Count(doc, "\n"), bytes.Count(out, []byte{'\n'}))

	lines := strings.Split(string(out), "\n")
	assert.Equal(t, "Space {", lines[5])
	assert.Equal(t, "    name: \"kitchen\",", lines[6])
	assert.Equal(t, "}", lines[7])
	assert.Equal(t, "Building { name: \"home\" }", lines[15])

	// prose, fences and other languages are blanked
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.Empty(t, strings.TrimSpace(lines[4]))
	assert.Empty(t, strings.TrimSpace(lines[11]))
}

func TestBlocks(t *testing.T) {
	blocks := Blocks([]byte(doc))
	require.Len(t, blocks, 2)
	assert.Equal(t, 6, blocks[0].Line)
	assert.Equal(t, 16, blocks[1].Line)
	assert.True(t, strings.HasPrefix(doc[blocks[1].Start:blocks[1].End], "Building {"))
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("docs/house.md"))
	assert.True(t, IsMarkdown("HOUSE.MD"))
	assert.False(t, IsMarkdown("house.simple"))
}
