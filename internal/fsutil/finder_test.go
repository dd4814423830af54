package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPluginFiles(t *testing.T) {
	t.Run("finds files in nested directories", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.roc"), []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "b.roc"), []byte("x"), 0o644))

		files, err := FindPluginFiles(root)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a.roc"),
			filepath.Join(root, "nested", "b.roc"),
		}, files)
	})

	t.Run("skips dotfiles", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "seen.roc"), []byte("x"), 0o644))

		files, err := FindPluginFiles(root)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "seen.roc")}, files)
	})

	t.Run("empty directory yields no files", func(t *testing.T) {
		files, err := FindPluginFiles(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := FindPluginFiles(filepath.Join(t.TempDir(), "does-not-exist"))
		assert.Error(t, err)
	})
}
