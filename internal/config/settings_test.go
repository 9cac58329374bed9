package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-batch/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestLastMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mode := settings.GetLastMode(); mode != DefaultMode {
		t.Errorf("Expected default mode %s, got %s", DefaultMode, mode)
	}

	settings.SetLastMode(model.ModeNameAudio)
	if mode := settings.GetLastMode(); mode != model.ModeNameAudio {
		t.Errorf("Expected mode %s, got %s", model.ModeNameAudio, mode)
	}

	// Unknown names fall back to the default
	settings.SetLastMode("Podcast")
	if mode := settings.GetLastMode(); mode != DefaultMode {
		t.Errorf("Unknown mode should fall back to %s, got %s", DefaultMode, mode)
	}
}

func TestLastResolution(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if r := settings.GetLastResolution(); r != DefaultResolution {
		t.Errorf("Expected default resolution %s, got %s", DefaultResolution, r)
	}

	settings.SetLastResolution(model.Resolution2160)
	if r := settings.GetLastResolution(); r != model.Resolution2160 {
		t.Errorf("Expected resolution 2160, got %s", r)
	}

	// Invalid values are ignored
	settings.SetLastResolution(model.Resolution(480))
	if r := settings.GetLastResolution(); r != model.Resolution2160 {
		t.Errorf("Invalid resolution should be ignored, got %s", r)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
