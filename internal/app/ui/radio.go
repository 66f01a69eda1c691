package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/libraryservice"
)

// radioList shows the static station directory and streams a selection.
type radioList struct {
	widget.BaseWidget

	stations []app.RadioStation
	playing  *widget.Label
	list     *widget.List
	u        *UI
}

func newRadioList(u *UI) *radioList {
	a := &radioList{
		stations: libraryservice.RadioStations(),
		playing:  widget.NewLabel(""),
		u:        u,
	}
	a.ExtendBaseWidget(a)
	a.list = widget.NewList(
		func() int {
			return len(a.stations)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(
				nil, nil, nil,
				widget.NewButtonWithIcon("", theme.MediaPlayIcon(), nil),
				widget.NewLabel("station"),
			)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.stations) {
				return
			}
			st := a.stations[id]
			row := co.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(st.Name)
			row[1].(*widget.Button).OnTapped = func() {
				a.play(st)
			}
		},
	)
	return a
}

func (a *radioList) CreateRenderer() fyne.WidgetRenderer {
	stop := widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		a.u.stream.Stop()
		a.playing.SetText("")
	})
	c := container.NewBorder(
		container.NewHBox(a.playing, stop),
		nil, nil, nil,
		a.list,
	)
	return widget.NewSimpleRenderer(c)
}

func (a *radioList) play(st app.RadioStation) {
	// a live stream and an ayah session share the output,
	// so end any ayah session first
	a.u.player.Stop(context.Background())
	if err := a.u.stream.PlayStream(st.StreamURL); err != nil {
		a.u.showErrorDialog("Failed to start radio stream", err)
		return
	}
	a.playing.SetText(a.u.t("radio.listen") + ": " + st.Name)
}
