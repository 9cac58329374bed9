package model

import (
	"strings"
	"time"
)

// LinkTask tracks a single link while its batch runs
type LinkTask struct {
	URL        string
	Status     LinkStatus
	Percent    string    // last percentage reported by the library, e.g. "42.0%"
	OutputPath string    // file reported on the finished tick
	LastError  string    // error message if the link failed
	StartedAt  time.Time // when the download started
	FinishedAt time.Time // when the download reached a terminal state
}

// NewLinkTask creates a pending task for url
func NewLinkTask(url string) *LinkTask {
	return &LinkTask{URL: url, Status: LinkStatusPending}
}

// Elapsed returns how long the link took, or zero if it has not finished
func (t *LinkTask) Elapsed() time.Duration {
	if t.StartedAt.IsZero() || t.FinishedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}

// GetDisplayTitle returns the output filename without extension, or the URL
func (t *LinkTask) GetDisplayTitle() string {
	if t.OutputPath != "" {
		parts := strings.FieldsFunc(t.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}
	return t.URL
}
