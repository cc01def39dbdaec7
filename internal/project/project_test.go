package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("1"), 0o644))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.lm"))
	touch(t, filepath.Join(dir, "a.lm"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "c.lm"))
	touch(t, filepath.Join(dir, ".git", "d.lm"))
	single := filepath.Join(t.TempDir(), "script.txt")
	touch(t, single)

	files, err := Collect([]string{single, dir, "-"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		single,
		filepath.Join(dir, "a.lm"),
		filepath.Join(dir, "b.lm"),
		filepath.Join(dir, "sub", "c.lm"),
		"-",
	}, files)
}

func TestCollectMissing(t *testing.T) {
	_, err := Collect([]string{filepath.Join(t.TempDir(), "gone")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollectStdinOnce(t *testing.T) {
	files, err := Collect([]string{"-", "-", "-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-"}, files)
}
