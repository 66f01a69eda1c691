package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
)

// prayerTimes shows today's schedule and the Hijri date
// for the configured location.
type prayerTimes struct {
	widget.BaseWidget

	header *widget.Label
	hijri  *widget.Label
	rows   *fyne.Container
	status *widget.Label
	retry  *widget.Button
	u      *UI
}

func newPrayerTimes(u *UI) *prayerTimes {
	a := &prayerTimes{
		header: widget.NewLabel(u.t("prayer.today")),
		hijri:  widget.NewLabel(""),
		rows:   container.NewVBox(),
		status: widget.NewLabel(""),
		u:      u,
	}
	a.ExtendBaseWidget(a)
	a.header.TextStyle = fyne.TextStyle{Bold: true}
	a.retry = widget.NewButton(u.t("common.retry"), func() {
		a.load()
	})
	a.retry.Hide()
	a.load()
	return a
}

func (a *prayerTimes) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewVBox(
		a.header,
		a.hijri,
		widget.NewSeparator(),
		a.rows,
		container.NewHBox(a.status, a.retry),
	)
	return widget.NewSimpleRenderer(c)
}

func (a *prayerTimes) load() {
	loc := a.u.settings.Location()
	if loc.IsZero() {
		a.status.SetText(a.u.t("prayer.noLocation"))
		return
	}
	a.status.SetText(a.u.t("common.loading"))
	a.retry.Hide()
	go func() {
		pt, err := a.u.prayer.Timings(context.Background(), loc.Coordinates, time.Now())
		fyne.Do(func() {
			if err != nil {
				a.status.SetText(a.u.t("common.failed"))
				a.retry.Show()
				return
			}
			a.hijri.SetText(fmt.Sprintf(
				"%s %s %s",
				a.u.formatNumber(pt.Hijri.Day),
				pt.Hijri.MonthName,
				a.u.formatNumber(pt.Hijri.Year),
			))
			a.rows.RemoveAll()
			for _, name := range app.PrayerNames {
				v, ok := pt.Timings[name]
				if !ok {
					continue
				}
				a.rows.Add(container.NewBorder(
					nil, nil,
					widget.NewLabel(string(name)),
					widget.NewLabel(v),
				))
			}
			a.status.SetText("")
			a.rows.Refresh()
		})
	}()
}
