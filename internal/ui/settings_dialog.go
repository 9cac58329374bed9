package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/yt-batch/internal/config"
)

// SettingsDialog edits the interface language and the default download folder
type SettingsDialog struct {
	settings     *config.Settings
	folders      *config.FolderStore
	localization *Localization
	window       fyne.Window
	logger       *log.Logger
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	folderEntry    *widget.Entry
	languageSelect *widget.Select
	languageLabels map[string]string // code -> display name
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a
// successful save.
func NewSettingsDialog(window fyne.Window, settings *config.Settings, folders *config.FolderStore, localization *Localization, logger *log.Logger, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		folders:      folders,
		localization: localization,
		window:       window,
		logger:       logger,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.folderEntry = widget.NewEntry()

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	folderRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.folderEntry)

	sd.languageLabels = sd.settings.GetLanguageOptions()
	languageOptions := make([]string, 0, len(sd.languageLabels))
	for _, code := range append([]string{LanguageSystem}, sd.localization.LanguageCodes()...) {
		if label, ok := sd.languageLabels[code]; ok {
			languageOptions = append(languageOptions, label)
		}
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDefaultFolder)),
		folderRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	dir, ok, err := sd.folders.Load()
	if err != nil {
		sd.logger.Warn("cannot load default folder", "err", err)
	}
	if !ok {
		dir = ""
	}
	sd.folderEntry.SetText(dir)
	sd.languageSelect.SetSelected(sd.languageLabels[sd.settings.GetLanguage()])
}

// selectedLanguage maps the selected display name back to its code
func (sd *SettingsDialog) selectedLanguage() string {
	for code, label := range sd.languageLabels {
		if label == sd.languageSelect.Selected {
			return code
		}
	}
	return ""
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.folderEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := strings.TrimSpace(sd.folderEntry.Text); dir != "" {
		if err := sd.folders.Save(dir); err != nil {
			sd.logger.Error("cannot save default folder", "path", sd.folders.Path, "err", err)
			dialog.ShowError(err, sd.window)
			return
		}
	}

	if code := sd.selectedLanguage(); code != "" {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
