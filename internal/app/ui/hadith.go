package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
)

// hadithBrowser drills down from books to chapters to hadiths.
type hadithBrowser struct {
	widget.BaseWidget

	books  []app.HadithBook
	list   *widget.List
	status *widget.Label
	retry  *widget.Button
	u      *UI
}

func newHadithBrowser(u *UI) *hadithBrowser {
	a := &hadithBrowser{
		books:  make([]app.HadithBook, 0),
		status: widget.NewLabel(""),
		u:      u,
	}
	a.ExtendBaseWidget(a)
	a.retry = widget.NewButton(u.t("common.retry"), func() {
		a.load()
	})
	a.retry.Hide()
	a.list = widget.NewList(
		func() int {
			return len(a.books)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(
				nil, nil, nil,
				widget.NewLabel("count"),
				widget.NewLabel("book"),
			)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.books) {
				return
			}
			b := a.books[id]
			row := co.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(fmt.Sprintf("%s - %s", b.Name, b.Author))
			row[1].(*widget.Label).SetText(a.u.formatNumber(b.HadithCount))
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		defer a.list.UnselectAll()
		if id >= len(a.books) {
			return
		}
		a.showChapters(a.books[id])
	}
	a.load()
	return a
}

func (a *hadithBrowser) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewBorder(
		container.NewHBox(a.status, a.retry),
		nil, nil, nil,
		a.list,
	)
	return widget.NewSimpleRenderer(c)
}

func (a *hadithBrowser) load() {
	a.status.SetText(a.u.t("common.loading"))
	a.retry.Hide()
	go func() {
		books, err := a.u.hadith.Books(context.Background())
		fyne.Do(func() {
			if err != nil {
				a.status.SetText(a.u.t("common.failed"))
				a.retry.Show()
				return
			}
			a.books = books
			a.status.SetText("")
			a.list.Refresh()
		})
	}()
}

func (a *hadithBrowser) showChapters(b app.HadithBook) {
	var chapters []app.HadithChapter
	status := widget.NewLabel(a.u.t("common.loading"))
	list := widget.NewList(
		func() int {
			return len(chapters)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("chapter")
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(chapters) {
				return
			}
			c := chapters[id]
			co.(*widget.Label).SetText(fmt.Sprintf("%s. %s", c.Number, c.Name))
		},
	)
	w := a.u.fyneApp.NewWindow(fmt.Sprintf("%s - %s", b.Name, a.u.t("app.title")))
	w.Resize(fyne.NewSize(600, 500))
	w.SetContent(container.NewBorder(status, nil, nil, nil, list))
	list.OnSelected = func(id widget.ListItemID) {
		defer list.UnselectAll()
		if id >= len(chapters) {
			return
		}
		a.showHadiths(b, chapters[id])
	}
	w.Show()
	go func() {
		cc, err := a.u.hadith.Chapters(context.Background(), b.Slug)
		fyne.Do(func() {
			if err != nil {
				status.SetText(a.u.t("common.failed"))
				return
			}
			chapters = cc
			status.SetText(b.Name)
			list.Refresh()
		})
	}()
}

func (a *hadithBrowser) showHadiths(b app.HadithBook, c app.HadithChapter) {
	var hadiths []app.Hadith
	page := 0
	hasNext := true
	status := widget.NewLabel("")
	var loadMore *widget.Button
	list := widget.NewList(
		func() int {
			return len(hadiths)
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("hadith")
			l.Wrapping = fyne.TextWrapWord
			return l
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(hadiths) {
				return
			}
			h := hadiths[id]
			co.(*widget.Label).SetText(fmt.Sprintf("%s. %s\n\n%s [%s]", h.Number, h.Narrator, h.Text, h.Grade))
		},
	)
	var load func()
	load = func() {
		if !hasNext {
			return
		}
		status.SetText(a.u.t("common.loading"))
		loadMore.Hide()
		next := page + 1
		go func() {
			hp, err := a.u.hadith.Hadiths(context.Background(), b.Slug, c.ID, next)
			fyne.Do(func() {
				if err != nil {
					status.SetText(a.u.t("common.failed"))
					loadMore.Show()
					return
				}
				hadiths = append(hadiths, hp.Hadiths...)
				page = hp.CurrentPage
				hasNext = hp.HasNext()
				status.SetText("")
				if hasNext {
					loadMore.Show()
				}
				list.Refresh()
			})
		}()
	}
	loadMore = widget.NewButton(a.u.t("common.loadMore"), load)
	loadMore.Hide()
	w := a.u.fyneApp.NewWindow(fmt.Sprintf("%s %s - %s", b.Name, c.Number, a.u.t("app.title")))
	w.Resize(fyne.NewSize(600, 500))
	w.SetContent(container.NewBorder(
		nil,
		container.NewHBox(status, loadMore),
		nil, nil,
		list,
	))
	w.Show()
	load()
}
