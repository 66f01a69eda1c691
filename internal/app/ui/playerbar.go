package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
)

// playerBar is the playback control surface shared across all views.
// It is visible iff a playback session is active.
type playerBar struct {
	widget.BaseWidget

	label      *widget.Label
	playPause  *widget.Button
	prev       *widget.Button
	next       *widget.Button
	stop       *widget.Button
	repeatMode *widget.Select
	volume     *widget.Slider
	u          *UI
}

func newPlayerBar(u *UI) *playerBar {
	a := &playerBar{
		label: widget.NewLabel(""),
		u:     u,
	}
	a.ExtendBaseWidget(a)
	a.playPause = widget.NewButtonWithIcon("", theme.MediaPauseIcon(), func() {
		ctx := context.Background()
		if u.player.Status().IsPlaying {
			u.player.Pause(ctx)
		} else {
			u.player.Resume(ctx)
		}
	})
	a.prev = widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), func() {
		u.player.PlayPrev(context.Background())
	})
	a.next = widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), func() {
		u.player.PlayNext(context.Background())
	})
	a.stop = widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		u.player.Stop(context.Background())
	})
	a.repeatMode = widget.NewSelect(
		[]string{
			app.RepeatNone.String(),
			app.RepeatOne.String(),
			app.RepeatAll.String(),
		},
		func(s string) {
			u.settings.SetRepeatMode(app.RepeatModeFromString(s))
		},
	)
	a.repeatMode.SetSelected(u.settings.RepeatMode().String())
	a.volume = widget.NewSlider(0, 1)
	a.volume.Step = 0.05
	a.volume.Value = u.settings.Volume()
	a.volume.OnChangeEnded = func(v float64) {
		u.player.SetVolume(v)
	}
	a.Hide()
	u.player.StatusChanged.AddListener(func(_ context.Context, status app.AudioStatus) {
		fyne.Do(func() {
			a.refresh(status)
		})
	})
	return a
}

func (a *playerBar) CreateRenderer() fyne.WidgetRenderer {
	a.volume.Resize(fyne.NewSize(120, a.volume.MinSize().Height))
	c := container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(
			a.prev,
			a.playPause,
			a.next,
			a.stop,
			a.label,
			layout.NewSpacer(),
			a.repeatMode,
			container.NewGridWrap(fyne.NewSize(120, a.volume.MinSize().Height), a.volume),
		))
	return widget.NewSimpleRenderer(c)
}

func (a *playerBar) refresh(status app.AudioStatus) {
	if !status.IsActive() {
		a.Hide()
		return
	}
	a.label.SetText(fmt.Sprintf(
		"%s : %s",
		a.u.formatNumber(status.SurahID),
		a.u.formatNumber(status.AyahID),
	))
	if status.IsPlaying {
		a.playPause.SetIcon(theme.MediaPauseIcon())
	} else {
		a.playPause.SetIcon(theme.MediaPlayIcon())
	}
	a.Show()
	a.Refresh()
}
