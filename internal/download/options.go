package download

import (
	"fmt"
	"path/filepath"

	"github.com/ytget/yt-batch/internal/model"
)

// Library option constants
const (
	// Titles are truncated so long names stay within filesystem limits.
	OutputTemplate = "%(title).100s.%(ext)s"

	VideoFormatTemplate = "bestvideo[height<=%d]+bestaudio/best"
	VideoMergeFormat    = "mp4"

	AudioFormat  = "bestaudio[ext=m4a]"
	AudioCodec   = "mp3"
	AudioQuality = "320K"
)

// Options is the mode-specific configuration passed to a Fetcher
type Options struct {
	Format            string
	Output            string // full output path template
	MergeOutputFormat string // container for merged video+audio, empty for audio
	ExtractAudio      bool
	AudioCodec        string
	AudioQuality      string
}

// OptionsFor builds the library options for mode, writing into dir.
func OptionsFor(mode model.Mode, dir string) Options {
	opts := Options{
		Output: filepath.Join(dir, OutputTemplate),
	}

	switch m := mode.(type) {
	case model.VideoMode:
		opts.Format = fmt.Sprintf(VideoFormatTemplate, int(m.Resolution))
		opts.MergeOutputFormat = VideoMergeFormat
	case model.AudioMode:
		opts.Format = AudioFormat
		opts.ExtractAudio = true
		opts.AudioCodec = AudioCodec
		opts.AudioQuality = AudioQuality
	}

	return opts
}
