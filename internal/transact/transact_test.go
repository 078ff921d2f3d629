package transact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func read(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestCopyCreatesAndReplaces(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	write(t, src, "country.yaml", "new content")
	write(t, dest, "country.yaml", "old content")

	require.NoError(t, Copy(src, dest))
	assert.Equal(t, "new content", read(t, dest, "country.yaml"))
}

func TestCopyCreatesDestDir(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")
	write(t, src, "country.yaml", "content")

	require.NoError(t, Copy(src, dest))
	assert.Equal(t, "content", read(t, dest, "country.yaml"))
}

func TestCopySkipsDirectories(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(src, "sub"), 0o755))
	write(t, src, "country.yaml", "content")

	require.NoError(t, Copy(src, dest))
	_, err := os.Stat(filepath.Join(dest, "sub"))
	assert.True(t, os.IsNotExist(err))
}

func TestCopyAbortsBeforeWritingWhenDestUnwritable(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	write(t, src, "a.yaml", "content a")
	write(t, src, "b.yaml", "content b")

	// b collides with a directory; the precheck must fail before a is copied.
	require.NoError(t, os.Mkdir(filepath.Join(dest, "b.yaml"), 0o755))

	err := Copy(src, dest)
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dest, "a.yaml"))
	assert.True(t, os.IsNotExist(statErr), "no file may be written after a failed precheck")
}
