package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/link"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	downloader   download.Downloader
	folders      *config.FolderStore
	settings     *config.Settings
	localization *Localization
	logger       *log.Logger

	// Form
	typeLabel     *widget.Label
	modeSelect    *widget.Select
	resLabel      *widget.Label
	resSelect     *widget.Select
	linksLabel    *widget.Label
	linksEntry    *widget.Entry
	folderLabel   *widget.Label
	folderEntry   *widget.Entry
	browseBtn     *widget.Button
	openFolderBtn *widget.Button
	defaultCheck  *widget.Check
	startBtn      *widget.Button

	// Log panel
	logLines binding.StringList
	logList  *widget.List
}

// NewRootUI creates the main window content and loads the saved default folder
func NewRootUI(window fyne.Window, downloader download.Downloader, folders *config.FolderStore, settings *config.Settings, logger *log.Logger) *RootUI {
	if logger == nil {
		logger = log.Default()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		downloader:   downloader,
		folders:      folders,
		settings:     settings,
		localization: localization,
		logger:       logger.With("component", "ui"),
		logLines:     binding.NewStringList(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.loadDefaultFolder()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.typeLabel = widget.NewLabel("")
	ui.resLabel = widget.NewLabel("")
	ui.linksLabel = widget.NewLabel("")
	ui.folderLabel = widget.NewLabel("")

	resolutions := make([]string, 0, len(model.Resolutions))
	for _, r := range model.Resolutions {
		resolutions = append(resolutions, r.String())
	}
	ui.resSelect = widget.NewSelect(resolutions, nil)
	ui.resSelect.SetSelected(ui.settings.GetLastResolution().String())

	// Created after resSelect, OnChanged toggles it
	ui.modeSelect = widget.NewSelect(model.ModeNames(), ui.onModeChanged)
	ui.modeSelect.SetSelected(ui.settings.GetLastMode())

	ui.linksEntry = widget.NewMultiLineEntry()
	ui.linksEntry.SetMinRowsVisible(LinksEntryRows)
	ui.linksEntry.PlaceHolder = "https://www.youtube.com/watch?v=..."

	ui.folderEntry = widget.NewEntry()
	ui.browseBtn = widget.NewButton("", ui.onBrowseClick)
	ui.openFolderBtn = widget.NewButton("", ui.onOpenFolderClick)
	ui.defaultCheck = widget.NewCheck("", nil)

	ui.logList = widget.NewListWithData(
		ui.logLines,
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Wrapping = fyne.TextWrapWord
			return label
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)

	ui.startBtn = widget.NewButton("", ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.typeLabel),
		ui.modeSelect,
		ui.resLabel,
		ui.resSelect,
	)

	linksBox := container.NewBorder(ui.linksLabel, nil, nil, nil, ui.linksEntry)

	folderBox := container.NewVBox(
		ui.folderLabel,
		container.NewBorder(nil, nil, nil, container.NewHBox(ui.browseBtn, ui.openFolderBtn), ui.folderEntry),
		ui.defaultCheck,
	)
	logBox := container.NewBorder(folderBox, nil, nil, nil, ui.logList)

	split := container.NewVSplit(linksBox, logBox)
	split.Offset = SplitOffset

	ui.window.SetContent(container.NewBorder(form, ui.startBtn, nil, nil, split))
	ui.refreshUITexts()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.LanguageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.typeLabel.SetText(ui.localization.GetText(KeyChooseType))
	ui.resLabel.SetText(ui.localization.GetText(KeyChooseResolution))
	ui.linksLabel.SetText(ui.localization.GetText(KeyEnterLinks))
	ui.folderLabel.SetText(ui.localization.GetText(KeyChooseFolder))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.openFolderBtn.SetText(ui.localization.GetText(KeyOpenFolder))
	ui.defaultCheck.SetText(ui.localization.GetText(KeySetDefaultFolder))
	ui.startBtn.SetText(ui.localization.GetText(KeyStartDownload))
}

// onModeChanged shows the resolution selector only for video
func (ui *RootUI) onModeChanged(mode string) {
	if mode == model.ModeNameVideo {
		ui.resLabel.Show()
		ui.resSelect.Show()
		return
	}
	ui.resLabel.Hide()
	ui.resSelect.Hide()
}

// loadDefaultFolder fills the folder field from the preference file, if any
func (ui *RootUI) loadDefaultFolder() {
	dir, ok, err := ui.folders.Load()
	if err != nil {
		ui.logger.Warn("cannot load default folder", "path", ui.folders.Path, "err", err)
		return
	}
	if ok {
		ui.folderEntry.SetText(dir)
	}
}

// onBrowseClick opens a folder picker
func (ui *RootUI) onBrowseClick() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.folderEntry.SetText(uri.Path())
	}, ui.window)

	if start := ui.browseStart(); start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			picker.SetLocation(lister)
		}
	}
	picker.Show()
}

// browseStart returns the folder the picker opens in: the current field value,
// else the user's Downloads directory, else nothing.
func (ui *RootUI) browseStart() string {
	if dir := strings.TrimSpace(ui.folderEntry.Text); platform.IsDirectory(dir) {
		return dir
	}
	if dir, err := platform.GetHomeDownloadsDir(); err == nil && platform.IsDirectory(dir) {
		return dir
	}
	return ""
}

// onOpenFolderClick reveals the chosen folder in the system file manager
func (ui *RootUI) onOpenFolderClick() {
	dir := strings.TrimSpace(ui.folderEntry.Text)

	err := platform.OpenFolder(dir)
	var notFound *platform.FolderNotFoundError
	switch {
	case err == nil:
	case errors.As(err, &notFound):
		dialog.ShowInformation(
			ui.localization.GetText(KeyFolderNotFoundTitle),
			ui.localization.GetText(KeyFolderNotFoundMessage),
			ui.window,
		)
	default:
		ui.logger.Error("cannot open folder", "path", dir, "err", err)
		dialog.ShowError(err, ui.window)
	}
}

// onStartClick validates the form and hands the batch to the downloader
func (ui *RootUI) onStartClick() {
	req := download.Request{
		Links:       link.ParseList(ui.linksEntry.Text),
		ModeName:    ui.modeSelect.Selected,
		Resolution:  ui.resSelect.Selected,
		Destination: ui.folderEntry.Text,
	}

	batch, err := download.Prepare(req)
	if err != nil {
		ui.showRequestError(err)
		return
	}

	if ui.defaultCheck.Checked {
		if err := ui.folders.Save(batch.Destination); err != nil {
			ui.logger.Warn("cannot save default folder", "path", ui.folders.Path, "err", err)
		}
	}

	ui.settings.SetLastMode(batch.Mode.Name())
	if video, ok := batch.Mode.(model.VideoMode); ok {
		ui.settings.SetLastResolution(video.Resolution)
	}

	ui.startBtn.Disable()
	if err := ui.downloader.Start(batch, &uiSink{ui: ui}); err != nil {
		if errors.Is(err, download.ErrBusy) {
			ui.logger.Warn("start ignored", "err", err)
			return
		}
		ui.startBtn.Enable()
		ui.logger.Error("cannot start batch", "batch", batch.ID, "err", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.logger.Info("batch submitted", "batch", batch.ID, "links", len(batch.Links), "mode", batch.Mode.Name())
}

// showRequestError maps a rejected request to its warning dialog
func (ui *RootUI) showRequestError(err error) {
	var invalid *link.InvalidLinksError
	var input *download.InputError

	switch {
	case errors.As(err, &invalid):
		ui.logger.Warn("rejected links", "links", invalid.Links)
		dialog.ShowInformation(
			ui.localization.GetText(KeyInvalidLinkTitle),
			ui.localization.GetText(KeyInvalidLinkMessage),
			ui.window,
		)
	case errors.As(err, &input):
		ui.logger.Warn("rejected request", "err", err)
		dialog.ShowInformation(
			ui.localization.GetText(KeyInputErrorTitle),
			ui.localization.GetText(KeyInputErrorMessage),
			ui.window,
		)
	default:
		dialog.ShowError(err, ui.window)
	}
}

// showDownloadError opens an error dialog for one failed link
func (ui *RootUI) showDownloadError(text string) {
	dialog.ShowCustom(
		ui.localization.GetText(KeyDownloadErrorTitle),
		ui.localization.GetText(KeyOK),
		downloadErrorContent(text),
		ui.window,
	)
}

func downloadErrorContent(text string) fyne.CanvasObject {
	icon := widget.NewIcon(theme.ErrorIcon())
	return container.NewBorder(nil, nil, icon, nil, widget.NewLabel(text))
}

// appendLog adds one line to the log panel. Must run on the UI goroutine.
func (ui *RootUI) appendLog(text string) {
	if err := ui.logLines.Append(text); err != nil {
		ui.logger.Warn("cannot append log line", "err", err)
		return
	}
	ui.logList.ScrollToBottom()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.window, ui.settings, ui.folders, ui.localization, ui.logger, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		if strings.TrimSpace(ui.folderEntry.Text) == "" {
			ui.loadDefaultFolder()
		}
	}).Show()
}

// uiSink forwards worker notifications to the UI goroutine
type uiSink struct {
	ui *RootUI
}

func (s *uiSink) OnProgress(text string) {
	fyne.Do(func() {
		s.ui.appendLog(text)
	})
}

func (s *uiSink) OnFinished(text string) {
	fyne.Do(func() {
		s.ui.appendLog(text)
	})
}

func (s *uiSink) OnError(text string) {
	fyne.Do(func() {
		s.ui.appendLog(text)
		s.ui.showDownloadError(text)
	})
}

func (s *uiSink) OnDone() {
	fyne.Do(func() {
		s.ui.startBtn.Enable()
	})
}
