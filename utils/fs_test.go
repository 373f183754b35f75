package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFileContents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0644))

	require.NoError(t, CopyFileContents(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

func TestCopyAllDirectory(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "htdocs")

	require.NoError(t, os.MkdirAll(filepath.Join(src, "media", "catalog"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("<html></html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "media", "catalog", "logo.png"), []byte("png"), 0644))

	require.NoError(t, CopyAll(src, dst))

	assert.FileExists(t, filepath.Join(dst, "index.html"))
	assert.FileExists(t, filepath.Join(dst, "media", "catalog", "logo.png"))
}

func TestCopyAllOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("old content"), 0644))

	require.NoError(t, CopyAll(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}
