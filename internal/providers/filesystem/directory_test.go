package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDirectory(t *testing.T) {
	walker := NewWalker()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("aaaa"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bb"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("c"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	infos, err := walker.List(dir)
	require.NoError(t, err)
	require.Len(t, infos, 4)

	byName := make(map[string]FileInfo, len(infos))
	dirs := 0
	for _, fi := range infos {
		byName[fi.Name] = fi
		if !fi.IsFile {
			dirs++
		}
		assert.Equal(t, filepath.Join(dir, fi.Name), fi.Path)
	}
	assert.Equal(t, 1, dirs, "exactly one entry is a directory")
	assert.False(t, byName["sub"].IsFile)

	require.NotNil(t, byName["a.txt"].Size)
	assert.Equal(t, uint64(4), *byName["a.txt"].Size)
	require.NotNil(t, byName["b.txt"].Size)
	assert.Equal(t, uint64(2), *byName["b.txt"].Size)
}

func TestListIsShallow(t *testing.T) {
	walker := NewWalker()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested", "deep.txt"), []byte("x"), 0o644))

	infos, err := walker.List(dir)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "sub", infos[0].Name)
}

func TestListEmptyDirectory(t *testing.T) {
	walker := NewWalker()

	infos, err := walker.List(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, infos, "empty listing must serialize as [], not null")
	assert.Empty(t, infos)
}

func TestListMissingDirectoryFailsWholesale(t *testing.T) {
	walker := NewWalker()

	_, err := walker.List(filepath.Join(t.TempDir(), "ghost"))
	assert.Error(t, err)
}

func TestListFileTarget(t *testing.T) {
	walker := NewWalker()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	// A non-directory target is a wholesale failure, same as an unreadable one.
	_, err := walker.List(path)
	assert.Error(t, err)
}
