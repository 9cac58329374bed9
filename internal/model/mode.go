package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode names as shown in the type selector
const (
	ModeNameVideo = "Video"
	ModeNameAudio = "Audio"
)

// Resolution is a maximum video height in pixels
type Resolution int

const (
	Resolution720  Resolution = 720
	Resolution1080 Resolution = 1080
	Resolution2160 Resolution = 2160
)

// Resolutions lists the selectable resolutions in display order.
var Resolutions = []Resolution{Resolution720, Resolution1080, Resolution2160}

// String returns the resolution as shown in the selector, e.g. "1080".
func (r Resolution) String() string {
	return strconv.Itoa(int(r))
}

// IsValid reports whether r is one of the selectable resolutions.
func (r Resolution) IsValid() bool {
	for _, known := range Resolutions {
		if r == known {
			return true
		}
	}
	return false
}

// ParseResolution converts a selector value into a Resolution.
func ParseResolution(s string) (Resolution, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid resolution %q: %w", s, err)
	}
	r := Resolution(n)
	if !r.IsValid() {
		return 0, fmt.Errorf("unsupported resolution: %d", n)
	}
	return r, nil
}

// Mode is the download kind. It is a closed set: VideoMode and AudioMode.
type Mode interface {
	// Name returns the display name ("Video" or "Audio").
	Name() string
	// Subdir returns the directory created under the destination for this mode.
	Subdir() string

	isMode()
}

// VideoMode downloads a merged video container capped at Resolution.
type VideoMode struct {
	Resolution Resolution
}

func (VideoMode) Name() string   { return ModeNameVideo }
func (VideoMode) Subdir() string { return strings.ToLower(ModeNameVideo) }
func (VideoMode) isMode()        {}

// AudioMode downloads the best audio stream and transcodes it.
type AudioMode struct{}

func (AudioMode) Name() string   { return ModeNameAudio }
func (AudioMode) Subdir() string { return strings.ToLower(ModeNameAudio) }
func (AudioMode) isMode()        {}

// ModeNames returns the selectable mode names in display order.
func ModeNames() []string {
	return []string{ModeNameVideo, ModeNameAudio}
}

// ParseMode builds a Mode from form values. The resolution is required for
// video and ignored for audio.
func ParseMode(name, resolution string) (Mode, error) {
	switch name {
	case ModeNameVideo:
		r, err := ParseResolution(resolution)
		if err != nil {
			return nil, err
		}
		return VideoMode{Resolution: r}, nil
	case ModeNameAudio:
		return AudioMode{}, nil
	default:
		return nil, fmt.Errorf("unknown download mode: %q", name)
	}
}
