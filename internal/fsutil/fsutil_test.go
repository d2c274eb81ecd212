package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))

	for _, name := range []string{"a.vert", "a.frag", "notes.txt", "nested/b.vert"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := FindFilesByExtensions(dir, []string{".vert", ".frag"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.frag"),
		filepath.Join(dir, "a.vert"),
		filepath.Join(dir, "nested", "b.vert"),
	}, files)
}

func TestFindFilesByExtensionsMissingRoot(t *testing.T) {
	_, err := FindFilesByExtensions(filepath.Join(t.TempDir(), "dne"), []string{".vert"})
	assert.Error(t, err)
}

func TestFindFilesByExtensionsPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtensions(".", nil)
	})
}
