package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderStore_AbsentBeforeSave(t *testing.T) {
	store := NewFolderStore(filepath.Join(t.TempDir(), DefaultPreferenceFile))

	dir, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, dir)
}

func TestFolderStore_RoundTrip(t *testing.T) {
	store := NewFolderStore(filepath.Join(t.TempDir(), DefaultPreferenceFile))

	require.NoError(t, store.Save("/home/user/Videos"))
	dir, ok, err := store.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/home/user/Videos", dir)

	// Save overwrites unconditionally
	require.NoError(t, store.Save("/mnt/media"))
	dir, ok, err = store.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/mnt/media", dir)
}

func TestFolderStore_TrimsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPreferenceFile)
	require.NoError(t, os.WriteFile(path, []byte("  /data/yt \n"), 0644))

	dir, ok, err := NewFolderStore(path).Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/data/yt", dir)
}

func TestFolderStore_BlankFileIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPreferenceFile)
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0644))

	_, ok, err := NewFolderStore(path).Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFolderStore_ReadError(t *testing.T) {
	// A directory cannot be read as a file
	_, _, err := NewFolderStore(t.TempDir()).Load()
	assert.Error(t, err)
}

func TestNewFolderStore_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPreferenceFile, NewFolderStore("").Path)
}
