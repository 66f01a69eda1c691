package ui

import (
	"fmt"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/github"
)

const (
	githubOwner = "alfurqan"
	githubRepo  = "alfurqan"
)

// statusBar is the horizontal bar at the bottom of the main window.
// It shows the app version and an update hint when a newer release exists.
type statusBar struct {
	widget.BaseWidget

	version *widget.Label
	update  *widget.Hyperlink
	u       *UI
}

func newStatusBar(u *UI) *statusBar {
	a := &statusBar{
		version: widget.NewLabel("v" + u.appVersion),
		update:  widget.NewHyperlink(u.t("update.available"), nil),
		u:       u,
	}
	a.ExtendBaseWidget(a)
	a.update.Hide()
	return a
}

func (a *statusBar) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewHBox(a.version, a.update)
	return widget.NewSimpleRenderer(c)
}

// startUpdateCheck checks in the background whether a newer release
// exists on GitHub and shows a hint when there is one.
func (a *statusBar) startUpdateCheck() {
	go func() {
		v, err := github.AvailableUpdate(githubOwner, githubRepo, a.u.appVersion)
		if err != nil {
			slog.Error("Failed to check for updates", "error", err)
			return
		}
		if !v.IsRemoteNewer {
			return
		}
		x, err := url.Parse(fmt.Sprintf("https://github.com/%s/%s/releases", githubOwner, githubRepo))
		if err != nil {
			return
		}
		fyne.Do(func() {
			a.update.SetText(fmt.Sprintf("%s: %s", a.u.t("update.available"), v.Latest))
			a.update.URL = x
			a.update.Show()
		})
	}()
}
