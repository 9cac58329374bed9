// Package ui contains the Fyne-based desktop user interface for the application.
// It collects a batch of links, a download mode and a destination folder, hands the
// batch to the download service and renders its notifications in a log panel.
// All UI strings are localized via Localization.
package ui
