package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// qiblaView shows the bearing towards the Kaaba
// for the configured location.
type qiblaView struct {
	widget.BaseWidget

	direction *widget.Label
	status    *widget.Label
	retry     *widget.Button
	u         *UI
}

func newQiblaView(u *UI) *qiblaView {
	a := &qiblaView{
		direction: widget.NewLabel(""),
		status:    widget.NewLabel(""),
		u:         u,
	}
	a.ExtendBaseWidget(a)
	a.direction.TextStyle = fyne.TextStyle{Bold: true}
	a.retry = widget.NewButton(u.t("common.retry"), func() {
		a.load()
	})
	a.retry.Hide()
	a.load()
	return a
}

func (a *qiblaView) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewVBox(
		widget.NewLabel(a.u.t("qibla.direction")),
		a.direction,
		container.NewHBox(a.status, a.retry),
	)
	return widget.NewSimpleRenderer(c)
}

func (a *qiblaView) load() {
	loc := a.u.settings.Location()
	if loc.IsZero() {
		a.status.SetText(a.u.t("prayer.noLocation"))
		return
	}
	a.status.SetText(a.u.t("common.loading"))
	a.retry.Hide()
	go func() {
		q, err := a.u.prayer.Qibla(context.Background(), loc.Coordinates)
		fyne.Do(func() {
			if err != nil {
				a.status.SetText(a.u.t("common.failed"))
				a.retry.Show()
				return
			}
			a.direction.SetText(fmt.Sprintf("%.1f°", q.Direction))
			a.status.SetText(loc.Name)
		})
	}()
}
