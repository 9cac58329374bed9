package platform

import (
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaylistExpander(t *testing.T) {
	tests := []struct {
		name            string
		timeout         time.Duration
		expectedTimeout time.Duration
	}{
		{name: "default when zero", timeout: 0, expectedTimeout: DefaultParseTimeout},
		{name: "default when negative", timeout: -time.Second, expectedTimeout: DefaultParseTimeout},
		{name: "custom", timeout: 5 * time.Second, expectedTimeout: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewPlaylistExpander(tt.timeout)
			require.NotNil(t, e)
			assert.Equal(t, tt.expectedTimeout, e.timeout)
			assert.NotNil(t, e.source)
		})
	}
}

func TestPlaylistExpander_Expand(t *testing.T) {
	e := NewPlaylistExpander(time.Second)

	var gotID string
	e.source = func(ctx context.Context, playlistID string, timeout time.Duration) ([]PlaylistItem, error) {
		gotID = playlistID
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline, "expander applies its timeout")
		return []PlaylistItem{
			{VideoID: "aaa", Title: "Concert Recording - Part 1"},
			{VideoID: "", Title: "deleted video"},
			{VideoID: "bbb", Title: "Concert Recording - Part 2"},
		}, nil
	}

	playlist, err := e.Expand(context.Background(), "https://www.youtube.com/playlist?list=PLxyz")
	require.NoError(t, err)
	assert.Equal(t, "PLxyz", gotID)
	assert.Equal(t, "PLxyz", playlist.ID)
	assert.Equal(t, "Concert Recording - Part Playlist", playlist.Title)
	assert.False(t, playlist.IsEmpty())
	assert.Equal(t, []string{
		"https://www.youtube.com/watch?v=aaa",
		"https://www.youtube.com/watch?v=bbb",
	}, playlist.Videos)
}

func TestPlaylistExpander_PassesTimeoutToSource(t *testing.T) {
	e := NewPlaylistExpander(3 * time.Minute)

	var got time.Duration
	e.source = func(ctx context.Context, playlistID string, timeout time.Duration) ([]PlaylistItem, error) {
		got = timeout
		return nil, nil
	}

	playlist, err := e.Expand(context.Background(), "https://www.youtube.com/playlist?list=PLxyz")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Minute, got)
	assert.True(t, playlist.IsEmpty())
	assert.Equal(t, DefaultPlaylistName, playlist.Title)
}

func TestPlaylistExpander_Errors(t *testing.T) {
	e := NewPlaylistExpander(time.Second)
	boom := errors.New("boom")
	e.source = func(ctx context.Context, playlistID string, timeout time.Duration) ([]PlaylistItem, error) {
		return nil, boom
	}

	_, err := e.Expand(context.Background(), "https://www.youtube.com/playlist?list=PLxyz")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, err = e.Expand(context.Background(), "https://youtu.be/abc")
	assert.Error(t, err, "non-playlist links are rejected")
}

func TestPlaylistTitle(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   string
	}{
		{"empty", nil, DefaultPlaylistName},
		{"single", []string{"Lecture"}, "Lecture Playlist"},
		{"short common prefix", []string{"Song A", "Song B"}, "Song A Playlist"},
		{"long common prefix", []string{"Machine Learning 101 - Intro", "Machine Learning 101 - Trees"}, "Machine Learning 101 Playlist"},
		{"cyrillic titles", []string{"Концерт Москва часть А", "Концерт Москва часть Б"}, "Концерт Москва часть Playlist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := playlistTitle(tt.titles)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "abc", commonPrefix("abcdef", "abcxyz"))
	assert.Equal(t, "", commonPrefix("abc", "xyz"))
	assert.Equal(t, "abc", commonPrefix("abc", "abcdef"))
	assert.Equal(t, "abc", commonPrefix("abcdef", "abc"))
	// А and Б share their first UTF-8 byte
	assert.Equal(t, "часть ", commonPrefix("часть А", "часть Б"))
}
