package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/wb-go/wbf/zlog"

	"github.com/ytget/countdown-tracker/internal/config"
	"github.com/ytget/countdown-tracker/internal/notify"
	"github.com/ytget/countdown-tracker/internal/store"
	"github.com/ytget/countdown-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.countdown-tracker"
	AppName = "Countdown Tracker"
)

func main() {
	zlog.Init()
	zlog.Logger.Info().Str("version", version).Msg("countdown tracker starting")

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewCountdownTheme(settings.GetThemeVariant()))

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	countdowns := store.NewStore(myApp.Preferences())
	countdowns.Load()

	toasts := notify.NewQueue(settings.GetToastDuration())

	ui.NewRootUI(myWindow, myApp, countdowns, toasts, settings)

	myWindow.ShowAndRun()
}
