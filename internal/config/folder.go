package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultPreferenceFile is the default folder preference, relative to the
// working directory.
const DefaultPreferenceFile = "default_folder.txt"

// FolderStore persists the default download folder as a single line of text.
type FolderStore struct {
	Path string
}

// NewFolderStore creates a store backed by path, or DefaultPreferenceFile when
// path is empty.
func NewFolderStore(path string) *FolderStore {
	if path == "" {
		path = DefaultPreferenceFile
	}
	return &FolderStore{Path: path}
}

// Load returns the saved folder. The boolean is false when nothing was saved.
func (s *FolderStore) Load() (string, bool, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read folder preference: %w", err)
	}

	dir := strings.TrimSpace(string(data))
	if dir == "" {
		return "", false, nil
	}
	return dir, true, nil
}

// Save overwrites the stored folder.
func (s *FolderStore) Save(dir string) error {
	if err := os.WriteFile(s.Path, []byte(strings.TrimSpace(dir)), 0644); err != nil {
		return fmt.Errorf("write folder preference: %w", err)
	}
	return nil
}
