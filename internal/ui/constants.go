package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Window sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 700
)

// Layout sizing
const (
	LinksEntryRows = 6
	SplitOffset    = 0.4

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 260
)

// Languages
const (
	LanguageSystem  = "system"
	LanguageDefault = "en"
)
