package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"no comments", "feat: add x\n\nbody", "feat: add x\n\nbody"},
		{"hint block stripped", "# hint line\n# another\nfeat: add x", "feat: add x"},
		{"mid-message comment", "feat: add x\n# note\nbody", "feat: add x\nbody"},
		{"only comments", "# a\n# b", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripComments(tt.message))
		})
	}
}

func TestStripCommentsIsStable(t *testing.T) {
	once := stripComments("# hint\nfeat: add x")
	assert.Equal(t, once, stripComments(once))
}

func TestWriteHint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")

	require.NoError(t, writeHint(path, "bad message", DefaultTypes()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	s := string(content)
	assert.True(t, strings.HasPrefix(s, "# Your commit message does not follow Conventional Commits formatting"))
	assert.Contains(t, s, strings.Join(DefaultTypes(), " "))
	assert.True(t, strings.HasSuffix(s, "\nbad message"))

	// re-reading through stripComments recovers the original message
	assert.Equal(t, "bad message", stripComments(s))

	// writing the hint twice must not stack hints
	require.NoError(t, writeHint(path, stripComments(s), DefaultTypes()))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Count(string(content), "# Your commit message"), 1)
}
