package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable read by LoadEnv.
const EnvPrefix = "YTB"

// Env holds process-level configuration read from YTB_* variables.
type Env struct {
	PreferenceFile  string        `envconfig:"PREFERENCE_FILE" default:"default_folder.txt"`
	YtdlpPath       string        `envconfig:"YTDLP_PATH"`
	InstallYtdlp    bool          `envconfig:"INSTALL_YTDLP" default:"false"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	Verbose         bool          `envconfig:"VERBOSE" default:"false"`
	PlaylistTimeout time.Duration `envconfig:"PLAYLIST_TIMEOUT" default:"60s"`
	ExpandPlaylists bool          `envconfig:"EXPAND_PLAYLISTS" default:"true"`
}

// LoadEnv reads environment variables and populates Env.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("error processing env: %w", err)
	}
	return &env, nil
}

// Level maps LogLevel to a logger level, falling back to info.
func (e *Env) Level() log.Level {
	level, err := log.ParseLevel(e.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
