package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/alfurqan/alfurqan/internal/app"
)

// surahList shows all chapters and opens the reader for a selection.
type surahList struct {
	widget.BaseWidget

	list   *widget.List
	top    *widget.Label
	retry  *widget.Button
	resume *widget.Button
	surahs []app.Surah
	u      *UI
}

func newSurahList(u *UI) *surahList {
	a := &surahList{
		top:    widget.NewLabel(""),
		surahs: make([]app.Surah, 0),
		u:      u,
	}
	a.ExtendBaseWidget(a)
	a.retry = widget.NewButton(u.t("common.retry"), func() {
		a.load()
	})
	a.retry.Hide()
	a.resume = widget.NewButton(u.t("reader.continue"), func() {
		if r, ok := u.userdata.RecentSurah(); ok {
			a.openReader(app.Surah{ID: r.SurahID, Name: r.Name, VersesCount: r.AyahCount})
		}
	})
	if r, ok := u.userdata.RecentSurah(); ok {
		a.resume.SetText(fmt.Sprintf("%s: %s (%s)", u.t("reader.continue"), r.Name, humanize.Time(r.OpenedAt)))
	} else {
		a.resume.Hide()
	}
	a.list = widget.NewList(
		func() int {
			return len(a.surahs)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(
				nil, nil,
				widget.NewLabel("999"),
				widget.NewLabel("arabic"),
				widget.NewLabel("name"),
			)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.surahs) {
				return
			}
			s := a.surahs[id]
			row := co.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(fmt.Sprintf("%s (%s)", s.Name, s.TranslatedName))
			row[1].(*widget.Label).SetText(a.u.formatNumber(s.ID))
			row[2].(*widget.Label).SetText(s.NameArabic)
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		defer a.list.UnselectAll()
		if id >= len(a.surahs) {
			return
		}
		a.openReader(a.surahs[id])
	}
	a.load()
	return a
}

func (a *surahList) CreateRenderer() fyne.WidgetRenderer {
	entry := widget.NewEntry()
	entry.PlaceHolder = a.u.t("common.search")
	entry.OnSubmitted = func(q string) {
		if q == "" {
			return
		}
		a.showSearchResults(q)
	}
	c := container.NewBorder(
		container.NewVBox(
			container.NewBorder(nil, nil, nil, container.NewHBox(a.retry, a.resume, a.top), entry),
			widget.NewSeparator(),
		),
		nil, nil, nil,
		a.list,
	)
	return widget.NewSimpleRenderer(c)
}

// showSearchResults runs a full text search and shows the matches.
// Selecting a match opens the reader for its surah.
func (a *surahList) showSearchResults(query string) {
	u := a.u
	var results []app.SearchResult
	status := widget.NewLabel(u.t("common.loading"))
	list := widget.NewList(
		func() int {
			return len(results)
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("result")
			l.Wrapping = fyne.TextWrapWord
			return l
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(results) {
				return
			}
			r := results[id]
			co.(*widget.Label).SetText(fmt.Sprintf("%s  %s", r.VerseKey, r.Text))
		},
	)
	w := u.fyneApp.NewWindow(fmt.Sprintf("%s: %s - %s", u.t("search.results"), query, u.t("app.title")))
	w.Resize(fyne.NewSize(600, 500))
	w.SetContent(container.NewBorder(status, nil, nil, nil, list))
	list.OnSelected = func(id widget.ListItemID) {
		defer list.UnselectAll()
		if id >= len(results) {
			return
		}
		surahID, _, ok := strings.Cut(results[id].VerseKey, ":")
		if !ok {
			return
		}
		n, err := strconv.Atoi(surahID)
		if err != nil {
			return
		}
		for _, s := range a.surahs {
			if s.ID == n {
				a.openReader(s)
				return
			}
		}
	}
	w.Show()
	go func() {
		rr, err := u.quran.Search(context.Background(), query, u.settings.AppLanguage(), 1)
		fyne.Do(func() {
			if err != nil {
				status.SetText(u.t("common.failed"))
				return
			}
			results = rr
			status.SetText("")
			list.Refresh()
		})
	}()
}

func (a *surahList) load() {
	a.top.SetText(a.u.t("common.loading"))
	a.retry.Hide()
	go func() {
		surahs, err := a.u.quran.Chapters(context.Background(), a.u.settings.AppLanguage())
		fyne.Do(func() {
			if err != nil {
				a.top.SetText(a.u.t("common.failed"))
				a.retry.Show()
				return
			}
			a.surahs = surahs
			a.top.SetText("")
			a.list.Refresh()
		})
	}()
}

func (a *surahList) openReader(s app.Surah) {
	a.u.userdata.SetRecentSurah(context.Background(), app.RecentSurah{
		SurahID:   s.ID,
		Name:      s.Name,
		AyahCount: s.VersesCount,
	})
	showVerseReader(a.u, s)
}
