package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
)

// calendarView shows the Hijri dates and prayer times of one
// Gregorian month.
type calendarView struct {
	widget.BaseWidget

	month  time.Time
	title  *widget.Label
	list   *widget.List
	status *widget.Label
	retry  *widget.Button
	days   []app.CalendarDay
	u      *UI
}

func newCalendarView(u *UI) *calendarView {
	now := time.Now()
	a := &calendarView{
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		title:  widget.NewLabel(""),
		status: widget.NewLabel(""),
		days:   make([]app.CalendarDay, 0),
		u:      u,
	}
	a.ExtendBaseWidget(a)
	a.title.TextStyle = fyne.TextStyle{Bold: true}
	a.retry = widget.NewButton(u.t("common.retry"), func() {
		a.load()
	})
	a.retry.Hide()
	a.list = widget.NewList(
		func() int {
			return len(a.days)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(
				nil, nil,
				widget.NewLabel("gregorian"),
				widget.NewLabel("fajr"),
				widget.NewLabel("hijri"),
			)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.days) {
				return
			}
			d := a.days[id]
			row := co.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(fmt.Sprintf(
				"%s %s %s",
				a.u.formatNumber(d.Hijri.Day),
				d.Hijri.MonthName,
				a.u.formatNumber(d.Hijri.Year),
			))
			row[1].(*widget.Label).SetText(d.Gregorian.Format("Mon 02"))
			row[2].(*widget.Label).SetText(d.Timings[app.Fajr] + " / " + d.Timings[app.Maghrib])
		},
	)
	a.load()
	return a
}

func (a *calendarView) CreateRenderer() fyne.WidgetRenderer {
	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		a.month = a.month.AddDate(0, -1, 0)
		a.load()
	})
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		a.month = a.month.AddDate(0, 1, 0)
		a.load()
	})
	c := container.NewBorder(
		container.NewHBox(prev, a.title, next, a.status, a.retry),
		nil, nil, nil,
		a.list,
	)
	return widget.NewSimpleRenderer(c)
}

func (a *calendarView) load() {
	loc := a.u.settings.Location()
	a.title.SetText(a.month.Format("January 2006"))
	if loc.IsZero() {
		a.status.SetText(a.u.t("prayer.noLocation"))
		return
	}
	a.status.SetText(a.u.t("common.loading"))
	a.retry.Hide()
	month := a.month
	go func() {
		days, err := a.u.prayer.Calendar(context.Background(), loc.Coordinates, month.Year(), month.Month())
		fyne.Do(func() {
			if month != a.month {
				return // superseded by another month
			}
			if err != nil {
				a.status.SetText(a.u.t("common.failed"))
				a.retry.Show()
				return
			}
			a.days = days
			a.status.SetText("")
			a.list.Refresh()
		})
	}()
}
