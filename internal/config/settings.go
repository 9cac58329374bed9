package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-batch/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyLastMode       = "last_mode"
	KeyLastResolution = "last_resolution"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultMode       = model.ModeNameVideo
	DefaultResolution = model.Resolution1080
)

// Settings manages UI state that survives restarts
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastMode returns the mode name used for the previous batch
func (s *Settings) GetLastMode() string {
	mode := s.app.Preferences().String(KeyLastMode)
	for _, name := range model.ModeNames() {
		if mode == name {
			return mode
		}
	}
	return DefaultMode
}

// SetLastMode remembers the selected mode name
func (s *Settings) SetLastMode(mode string) {
	s.app.Preferences().SetString(KeyLastMode, mode)
}

// GetLastResolution returns the video resolution used for the previous batch
func (s *Settings) GetLastResolution() model.Resolution {
	r := model.Resolution(s.app.Preferences().Int(KeyLastResolution))
	if !r.IsValid() {
		return DefaultResolution
	}
	return r
}

// SetLastResolution remembers the selected resolution. Invalid values are ignored.
func (s *Settings) SetLastResolution(r model.Resolution) {
	if !r.IsValid() {
		return
	}
	s.app.Preferences().SetInt(KeyLastResolution, int(r))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
