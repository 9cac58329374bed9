package model

import (
	"path/filepath"

	"github.com/google/uuid"
)

// Batch is one user-submitted set of links processed together under one
// mode and destination.
type Batch struct {
	ID          string
	Links       []string
	Mode        Mode
	Destination string // directory chosen by the user
}

// NewBatch creates a batch with a fresh ID. Links are kept in order, duplicates included.
func NewBatch(links []string, mode Mode, destination string) *Batch {
	return &Batch{
		ID:          uuid.NewString(),
		Links:       append([]string(nil), links...),
		Mode:        mode,
		Destination: destination,
	}
}

// OutputDir returns the mode-namespaced directory files are written to.
func (b *Batch) OutputDir() string {
	return filepath.Join(b.Destination, b.Mode.Subdir())
}
