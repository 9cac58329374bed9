package download

import (
	"context"

	"github.com/ytget/yt-batch/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// Start spawns the background worker for batch. It returns ErrBusy while
	// another batch is running.
	Start(batch *model.Batch, sink Sink) error

	// IsRunning reports whether a batch is in progress
	IsRunning() bool
}

// Sink receives worker notifications. Implementations must not block for long;
// they are called from the worker goroutine.
type Sink interface {
	OnProgress(text string)
	OnFinished(text string)
	OnError(text string)

	// OnDone is called exactly once after the last link was attempted.
	OnDone()
}

// ProgressStatus mirrors the status reported by the library progress hook
type ProgressStatus string

const (
	ProgressDownloading    ProgressStatus = "downloading"
	ProgressPostProcessing ProgressStatus = "post_processing"
	ProgressFinished       ProgressStatus = "finished"
)

// Progress is one tick of the library progress hook
type Progress struct {
	Status   ProgressStatus
	Percent  float64 // 0 to 100
	Filename string
}

// ProgressFunc receives progress ticks for a single link
type ProgressFunc func(Progress)

// Fetcher is a binding to a download library. Fetch either produces the
// requested file on disk and returns nil, or returns an error.
type Fetcher interface {
	Fetch(ctx context.Context, link string, opts Options, progress ProgressFunc) error
}

// Expander turns a playlist-only link into its titled list of video links.
type Expander interface {
	Expand(ctx context.Context, link string) (*model.Playlist, error)
}
