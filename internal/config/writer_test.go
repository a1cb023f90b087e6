package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAndUnset(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")

	require.NoError(t, Set(path, "theme", "neon"))
	require.NoError(t, Set(path, "log_level", "debug"))
	require.NoError(t, Set(path, "theme", "ocean"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "log_level: debug\ntheme: ocean\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	p, err := Load(context.Background(), LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	theme, _ := p.Get("theme")
	require.Equal(t, "ocean", theme)

	removed, err := Unset(path, "theme")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = Unset(path, "theme")
	require.NoError(t, err)
	require.False(t, removed)

	_, err = os.Stat(path + ".lock")
	require.True(t, os.IsNotExist(err), "lock file should be released")
}

func TestSet_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.ErrorIs(t, Set(path, "export_path", "x"), ErrUnknownKey)
	_, err := Unset(path, "export_path")
	require.ErrorIs(t, err, ErrUnknownKey)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestWithLock_Timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path+".lock", []byte("1"), 0600))

	// A fresh lock held by someone else is not stale.
	acquired := false
	done := make(chan error, 1)
	go func() {
		done <- WithLock(path, func() error {
			acquired = true
			return nil
		})
	}()

	require.ErrorIs(t, <-done, ErrLockTimeout)
	require.False(t, acquired)
}
