package fsutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("exists", func(t *testing.T) {
		exists, err := DirExists(tmpDir)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not_exists", func(t *testing.T) {
		exists, err := DirExists(filepath.Join(tmpDir, "non_existent"))
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("is_file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "file.txt")
		err := os.WriteFile(filePath, []byte("test"), 0644)
		assert.NoError(t, err)

		exists, err := DirExists(filePath)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestExpandHome(t *testing.T) {
	origHome := osUserHomeDir
	defer func() { osUserHomeDir = origHome }()
	osUserHomeDir = func() (string, error) {
		return filepath.Join("/", "home", "tester"), nil
	}

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("tilde_inside_name", func(t *testing.T) {
		assert.Equal(t, "~backup", ExpandHome("~backup"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		assert.Equal(t, filepath.Join("/", "home", "tester"), ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		assert.Equal(t, filepath.Join("/", "home", "tester", "abc"), ExpandHome("~/abc"))
	})
	t.Run("home_error", func(t *testing.T) {
		osUserHomeDir = func() (string, error) {
			return "", errors.New("no home")
		}
		assert.Equal(t, "~/abc", ExpandHome("~/abc"))
	})
}
