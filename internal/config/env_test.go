package config

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPreferenceFile, env.PreferenceFile)
	assert.Empty(t, env.YtdlpPath)
	assert.False(t, env.InstallYtdlp)
	assert.False(t, env.Verbose)
	assert.True(t, env.ExpandPlaylists)
	assert.Equal(t, 60*time.Second, env.PlaylistTimeout)
	assert.Equal(t, log.InfoLevel, env.Level())
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("YTB_PREFERENCE_FILE", "/etc/ytb/folder.txt")
	t.Setenv("YTB_YTDLP_PATH", "/usr/local/bin/yt-dlp")
	t.Setenv("YTB_INSTALL_YTDLP", "true")
	t.Setenv("YTB_LOG_LEVEL", "debug")
	t.Setenv("YTB_VERBOSE", "true")
	t.Setenv("YTB_PLAYLIST_TIMEOUT", "5s")
	t.Setenv("YTB_EXPAND_PLAYLISTS", "false")

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "/etc/ytb/folder.txt", env.PreferenceFile)
	assert.Equal(t, "/usr/local/bin/yt-dlp", env.YtdlpPath)
	assert.True(t, env.InstallYtdlp)
	assert.True(t, env.Verbose)
	assert.False(t, env.ExpandPlaylists)
	assert.Equal(t, 5*time.Second, env.PlaylistTimeout)
	assert.Equal(t, log.DebugLevel, env.Level())
}

func TestLoadEnv_InvalidValue(t *testing.T) {
	t.Setenv("YTB_PLAYLIST_TIMEOUT", "soon")

	_, err := LoadEnv()
	assert.Error(t, err)
}

func TestEnvLevel_Fallback(t *testing.T) {
	env := &Env{LogLevel: "chatty"}
	assert.Equal(t, log.InfoLevel, env.Level())
}
