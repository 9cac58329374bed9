package platform

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/v2/client"

	"github.com/ytget/yt-batch/internal/link"
	"github.com/ytget/yt-batch/internal/model"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// HTTP client settings for playlist requests
const (
	DefaultParseRetries = 3
	DefaultUserAgent    = "yt-batch/1.0"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Playlist title constants
const (
	DefaultPlaylistName = "Unknown Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// PlaylistItem is a single entry returned by a playlist source
type PlaylistItem struct {
	VideoID string
	Title   string
}

// playlistSource fetches playlist entries. Replaced in tests.
type playlistSource func(ctx context.Context, playlistID string, timeout time.Duration) ([]PlaylistItem, error)

// PlaylistExpander resolves playlist-only links into video links using the ytdlp library
type PlaylistExpander struct {
	timeout time.Duration
	source  playlistSource
}

// NewPlaylistExpander creates a new expander
func NewPlaylistExpander(timeout time.Duration) *PlaylistExpander {
	if timeout <= 0 {
		timeout = DefaultParseTimeout
	}
	return &PlaylistExpander{
		timeout: timeout,
		source:  fetchPlaylistItems,
	}
}

// Expand fetches the playlist at url. Videos holds the watch links in
// playlist order.
func (p *PlaylistExpander) Expand(ctx context.Context, url string) (*model.Playlist, error) {
	playlistID, ok := link.PlaylistID(url)
	if !ok {
		return nil, fmt.Errorf("not a playlist URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	items, err := p.source(ctx, playlistID, p.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := &model.Playlist{
		ID:     playlistID,
		URL:    url,
		Videos: make([]string, 0, len(items)),
	}
	titles := make([]string, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		playlist.Videos = append(playlist.Videos, fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID))
		titles = append(titles, it.Title)
	}
	playlist.Title = playlistTitle(titles)

	return playlist, nil
}

// fetchPlaylistItems lists playlist entries through the ytdlp library
func fetchPlaylistItems(ctx context.Context, playlistID string, timeout time.Duration) ([]PlaylistItem, error) {
	c := client.NewWith(client.Config{
		Timeout:   timeout,
		Retries:   DefaultParseRetries,
		UserAgent: DefaultUserAgent,
	})
	d := ytdlp.New().WithHTTPClient(c.HTTPClient)

	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return out, nil
}

// playlistTitle derives a title from the common prefix of the first two video titles
func playlistTitle(titles []string) string {
	if len(titles) == 0 {
		return DefaultPlaylistName
	}
	if len(titles) > 1 {
		prefix := commonPrefix(titles[0], titles[1])
		if utf8.RuneCountInString(prefix) > MinPrefixLength {
			return trimRight(prefix) + PlaylistSuffix
		}
	}
	return titles[0] + PlaylistSuffix
}

// commonPrefix finds the common prefix between two strings. It never splits a
// multi-byte character.
func commonPrefix(s1, s2 string) string {
	for i, r := range s1 {
		if i >= len(s2) {
			return s1[:i]
		}
		r2, _ := utf8.DecodeRuneInString(s2[i:])
		if r != r2 {
			return s1[:i]
		}
	}
	return s1
}

func trimRight(s string) string {
	return strings.TrimRight(s, " -")
}
