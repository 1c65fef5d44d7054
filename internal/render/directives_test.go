package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectDirectives(t *testing.T) {
	text := "//include a.txt\nplain line\n  //shell echo hi there\nsee http://x//y"

	entries := CollectDirectives(text)
	require.Len(t, entries, 2)

	assert.Equal(t, "//include a.txt", entries[0].Raw)
	assert.Equal(t, "include", entries[0].Name)
	assert.Equal(t, "a.txt", entries[0].Args)

	assert.Equal(t, "  //shell echo hi there", entries[1].Raw)
	assert.Equal(t, "shell", entries[1].Name)
	assert.Equal(t, "echo hi there", entries[1].Args)
}

func TestCollectDirectivesCollapsesDuplicates(t *testing.T) {
	text := "//include a.txt\nbody\n//include a.txt"

	entries := CollectDirectives(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "//include a.txt", entries[0].Raw)
}

func TestCollectAllDirectivesKeepsDuplicates(t *testing.T) {
	text := "//include a.txt\n//include a.txt"

	entries := CollectAllDirectives(text)
	assert.Len(t, entries, 2)
}

func TestCollectDirectivesNormalizesArgWhitespace(t *testing.T) {
	entries := CollectDirectives("//cmd   a    b\tc")
	require.Len(t, entries, 1)
	assert.Equal(t, "cmd", entries[0].Name)
	assert.Equal(t, "a b c", entries[0].Args)
}

func TestCollectDirectivesBareSentinel(t *testing.T) {
	entries := CollectDirectives("//")
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Name)
	assert.Empty(t, entries[0].Args)
}

func TestCollectDirectivesNone(t *testing.T) {
	assert.Empty(t, CollectDirectives("plain\ntext"))
	assert.Empty(t, CollectDirectives(""))
}
