package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/platform"
	"github.com/ytget/yt-batch/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-batch"
	AppName = "YouTube Downloader"
	AppIcon = "yt-batch.png"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           env.Level(),
		ReportTimestamp: true,
		Prefix:          "yt-batch",
	})
	log.SetDefault(logger)

	logger.Info("starting", "name", AppName, "version", version)

	executable := env.YtdlpPath
	if executable == "" && env.InstallYtdlp {
		executable, err = download.EnsureInstalled(context.Background(), logger)
		if err != nil {
			logger.Error("yt-dlp unavailable, falling back to PATH", "err", err)
		}
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := fyne.LoadResourceFromPath(AppIcon); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	downloadSvc := download.NewService(download.NewYTDLP(executable, env.Verbose, logger), logger)
	if env.ExpandPlaylists {
		downloadSvc.SetExpander(platform.NewPlaylistExpander(env.PlaylistTimeout))
	}

	settings := config.NewSettings(myApp)
	folders := config.NewFolderStore(env.PreferenceFile)

	ui.NewRootUI(myWindow, downloadSvc, folders, settings, logger)

	myWindow.ShowAndRun()
}
