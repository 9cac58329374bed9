package download

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lrstanley/go-ytdlp"
)

// DefaultProgressInterval is how often yt-dlp progress is sampled
const DefaultProgressInterval = 500 * time.Millisecond

// YTDLP is the Fetcher backed by the yt-dlp executable
type YTDLP struct {
	// Executable overrides the yt-dlp binary; empty uses the resolved default.
	Executable string
	// Verbose passes --verbose to yt-dlp.
	Verbose          bool
	ProgressInterval time.Duration
	Logger           *log.Logger
}

// NewYTDLP creates a yt-dlp fetcher
func NewYTDLP(executable string, verbose bool, logger *log.Logger) *YTDLP {
	if logger == nil {
		logger = log.Default()
	}
	return &YTDLP{
		Executable:       executable,
		Verbose:          verbose,
		ProgressInterval: DefaultProgressInterval,
		Logger:           logger,
	}
}

// Fetch downloads a single link with opts
func (y *YTDLP) Fetch(ctx context.Context, link string, opts Options, progress ProgressFunc) error {
	cmd := y.command(opts)

	interval := y.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	cmd.ProgressFunc(interval, func(update ytdlp.ProgressUpdate) {
		if progress == nil {
			return
		}
		progress(Progress{
			Status:   ProgressStatus(update.Status),
			Percent:  update.Percent(),
			Filename: update.Filename,
		})
	})

	y.Logger.Debug("running yt-dlp", "link", link, "format", opts.Format, "output", opts.Output)

	result, err := cmd.Run(ctx, link)
	if err != nil {
		if result != nil && result.Stderr != "" {
			y.Logger.Debug("yt-dlp stderr", "link", link, "stderr", result.Stderr)
		}
		return fmt.Errorf("yt-dlp: %w", err)
	}

	return nil
}

// command translates Options into a yt-dlp command
func (y *YTDLP) command(opts Options) *ytdlp.Command {
	cmd := ytdlp.New().
		NoPlaylist().
		Format(opts.Format).
		Output(opts.Output)

	if y.Executable != "" {
		cmd.SetExecutable(y.Executable)
	}
	if y.Verbose {
		cmd.Verbose()
	}
	if opts.MergeOutputFormat != "" {
		cmd.MergeOutputFormat(opts.MergeOutputFormat)
	}
	if opts.ExtractAudio {
		cmd.ExtractAudio()
		if opts.AudioCodec != "" {
			cmd.AudioFormat(opts.AudioCodec)
		}
		if opts.AudioQuality != "" {
			cmd.AudioQuality(opts.AudioQuality)
		}
	}

	return cmd
}

// EnsureInstalled resolves the yt-dlp executable, downloading it into the
// user cache when it is not available on PATH. It returns the resolved path.
func EnsureInstalled(ctx context.Context, logger *log.Logger) (string, error) {
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("install yt-dlp: %w", err)
	}
	if logger != nil {
		logger.Info("yt-dlp ready", "executable", resolved.Executable, "version", resolved.Version)
	}
	return resolved.Executable, nil
}
