package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"root"}`), 0o644))

	t.Run("reads whole file under the cap", func(t *testing.T) {
		content, err := NewOSFileSystem(1024).ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"root"}`, string(content))
	})

	t.Run("zero cap disables the limit", func(t *testing.T) {
		content, err := NewOSFileSystem(0).ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, content, 15)
	})

	t.Run("rejects files over the cap", func(t *testing.T) {
		_, err := NewOSFileSystem(4).ReadFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooLarge))

		var tooLarge *FileTooLargeError
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, int64(15), tooLarge.Size)
		assert.Equal(t, int64(4), tooLarge.Max)
	})

	t.Run("missing file keeps os.ErrNotExist", func(t *testing.T) {
		_, err := NewOSFileSystem(0).ReadFile(filepath.Join(dir, "missing.json"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, err := NewOSFileSystem(0).ReadFile(dir)
		assert.True(t, errors.Is(err, ErrIsDirectory))
	})
}

func TestUserHomeDir_FollowsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := NewOSFileSystem(0).UserHomeDir()

	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	info, err := NewOSFileSystem(0).Stat(filepath.Join(dir, "sub"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = NewOSFileSystem(0).Stat(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
