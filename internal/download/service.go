package download

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/yt-batch/internal/link"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// Notification formats
const (
	ProgressFormat         = "Downloading... %s completed."
	FinishedFileFormat     = "Finished downloading: %s"
	LinkDoneFormat         = "%s downloaded: %s"
	LinkErrorFormat        = "Error downloading %s from %s: %v"
	PlaylistErrorFormat    = "Error expanding playlist %s: %v"
	PlaylistEmptyFormat    = "Playlist %s has no videos"
	PlaylistExpandedFormat = "Playlist %s (%s): %d videos queued"
)

// Request holds the raw form values of a download request
type Request struct {
	Links       []string
	ModeName    string
	Resolution  string // ignored for audio
	Destination string
}

// Prepare validates a request and turns it into a batch. It returns
// *InputError for missing fields and *link.InvalidLinksError when any link is
// rejected. No partial acceptance.
func Prepare(req Request) (*model.Batch, error) {
	if len(req.Links) == 0 {
		return nil, &InputError{Reason: ReasonNoLinks}
	}
	if strings.TrimSpace(req.Destination) == "" {
		return nil, &InputError{Reason: ReasonNoDestination}
	}

	if err := link.ValidateAll(req.Links); err != nil {
		return nil, err
	}

	mode, err := model.ParseMode(req.ModeName, req.Resolution)
	if err != nil {
		return nil, &InputError{Reason: ReasonBadMode, Err: err}
	}

	return model.NewBatch(req.Links, mode, strings.TrimSpace(req.Destination)), nil
}

// Service handles download batches
type Service struct {
	fetcher  Fetcher
	expander Expander
	logger   *log.Logger

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewService creates a new download service
func NewService(fetcher Fetcher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// SetExpander enables playlist expansion. Nil disables it.
func (s *Service) SetExpander(expander Expander) {
	s.expander = expander
}

// IsRunning reports whether a batch is in progress
func (s *Service) IsRunning() bool {
	return s.running.Load()
}

// Wait blocks until the current batch, if any, has finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// Start creates the mode output directory and spawns the worker for batch.
// Exactly one worker runs at a time.
func (s *Service) Start(batch *model.Batch, sink Sink) error {
	if batch == nil || batch.Mode == nil {
		return errors.New("batch is required")
	}
	if sink == nil {
		return errors.New("sink is required")
	}

	if !s.running.CompareAndSwap(false, true) {
		return ErrBusy
	}

	dir := batch.OutputDir()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		s.running.Store(false)
		return &DirectoryError{Path: dir, Err: err}
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(context.Background(), batch, sink)
	}()

	return nil
}

// run processes every link of batch in order and signals completion.
func (s *Service) run(ctx context.Context, batch *model.Batch, sink Sink) {
	logger := s.logger.With("batch", batch.ID, "mode", batch.Mode.Name())
	logger.Info("batch started", "links", len(batch.Links), "dir", batch.OutputDir())

	var tasks []*model.LinkTask
	defer func() {
		s.logSummary(logger, tasks)
		// Release before notifying so the caller may start the next batch from OnDone.
		s.running.Store(false)
		sink.OnDone()
	}()

	opts := OptionsFor(batch.Mode, batch.OutputDir())

	for _, l := range batch.Links {
		urls, ok := s.expand(ctx, logger, l, sink)
		if !ok {
			tasks = append(tasks, &model.LinkTask{URL: l, Status: model.LinkStatusError})
			continue
		}
		for _, u := range urls {
			tasks = append(tasks, s.downloadLink(ctx, logger, batch.Mode, u, opts, sink))
		}
	}
}

// expand returns the links to download for l. A playlist-only link is
// replaced by its videos when an expander is configured.
func (s *Service) expand(ctx context.Context, logger *log.Logger, l string, sink Sink) ([]string, bool) {
	if s.expander == nil {
		return []string{l}, true
	}
	if _, isPlaylist := link.PlaylistID(l); !isPlaylist {
		return []string{l}, true
	}

	playlist, err := s.expander.Expand(ctx, l)
	if err != nil {
		logger.Warn("playlist expansion failed", "link", l, "err", err)
		sink.OnError(fmt.Sprintf(PlaylistErrorFormat, l, err))
		return nil, false
	}
	if playlist == nil || playlist.IsEmpty() {
		sink.OnError(fmt.Sprintf(PlaylistEmptyFormat, l))
		return nil, false
	}

	logger.Info("playlist expanded", "link", l, "title", playlist.Title, "videos", len(playlist.Videos))
	sink.OnProgress(fmt.Sprintf(PlaylistExpandedFormat, playlist.Title, l, len(playlist.Videos)))
	return playlist.Videos, true
}

// downloadLink fetches one link. Failures are reported once and never abort the batch.
func (s *Service) downloadLink(ctx context.Context, logger *log.Logger, mode model.Mode, url string, opts Options, sink Sink) *model.LinkTask {
	task := model.NewLinkTask(url)
	task.Status = model.LinkStatusDownloading
	task.StartedAt = time.Now()

	var mu sync.Mutex
	progress := func(p Progress) {
		mu.Lock()
		defer mu.Unlock()

		switch p.Status {
		case ProgressDownloading:
			task.Percent = FormatPercent(p.Percent)
			sink.OnProgress(fmt.Sprintf(ProgressFormat, task.Percent))
		case ProgressFinished:
			task.OutputPath = p.Filename
			sink.OnProgress(fmt.Sprintf(FinishedFileFormat, p.Filename))
		}
	}

	logger.Info("downloading", "link", url)
	err := s.fetchSafely(ctx, url, opts, progress)

	mu.Lock()
	defer mu.Unlock()
	task.FinishedAt = time.Now()

	if err != nil {
		task.Status = model.LinkStatusError
		task.LastError = err.Error()
		logger.Error("download failed", "link", url, "err", err)
		sink.OnError(fmt.Sprintf(LinkErrorFormat, strings.ToLower(mode.Name()), url, err))
		return task
	}

	task.Status = model.LinkStatusCompleted
	logger.Info("download completed", "link", url, "title", task.GetDisplayTitle(), "elapsed", task.Elapsed())
	sink.OnFinished(fmt.Sprintf(LinkDoneFormat, mode.Name(), url))
	return task
}

// fetchSafely converts a panic inside the binding into a per-link error
func (s *Service) fetchSafely(ctx context.Context, url string, opts Options, progress ProgressFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()
	return s.fetcher.Fetch(ctx, url, opts, progress)
}

// logSummary writes batch counts to the log. Users only see per-link notifications.
func (s *Service) logSummary(logger *log.Logger, tasks []*model.LinkTask) {
	completed, failed, unfinished := 0, 0, 0
	for _, t := range tasks {
		switch {
		case !t.Status.IsFinished():
			unfinished++
		case t.Status == model.LinkStatusCompleted:
			completed++
		default:
			failed++
		}
	}
	logger.Info("batch finished", "completed", completed, "failed", failed, "unfinished", unfinished)
}

// FormatPercent formats a 0-100 percentage like "42.0%"
func FormatPercent(p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return fmt.Sprintf("%.1f%%", p)
}
