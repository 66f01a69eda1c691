package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
)

// bookmarkList shows all bookmarks and follows store changes.
type bookmarkList struct {
	widget.BaseWidget

	list      *widget.List
	empty     *widget.Label
	bookmarks []app.Bookmark
	u         *UI
}

func newBookmarkList(u *UI) *bookmarkList {
	a := &bookmarkList{
		empty:     widget.NewLabel(u.t("bookmarks.empty")),
		bookmarks: u.userdata.ListBookmarks(),
		u:         u,
	}
	a.ExtendBaseWidget(a)
	a.list = widget.NewList(
		func() int {
			return len(a.bookmarks)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(
				nil, nil, nil,
				widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
				widget.NewLabel("bookmark"),
			)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.bookmarks) {
				return
			}
			b := a.bookmarks[id]
			row := co.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(fmt.Sprintf(
				"%s %s:%s",
				b.SurahName,
				a.u.formatNumber(b.SurahID),
				a.u.formatNumber(b.AyahID),
			))
			remove := row[1].(*widget.Button)
			remove.OnTapped = func() {
				a.u.userdata.ToggleBookmark(context.Background(), b)
			}
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		defer a.list.UnselectAll()
		if id >= len(a.bookmarks) {
			return
		}
		b := a.bookmarks[id]
		showVerseReader(a.u, app.Surah{ID: b.SurahID, Name: b.SurahName})
	}
	a.refresh()
	u.userdata.BookmarksChanged.AddListener(func(_ context.Context, bb []app.Bookmark) {
		fyne.Do(func() {
			a.bookmarks = bb
			a.refresh()
		})
	})
	return a
}

func (a *bookmarkList) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewStack(a.empty, a.list)
	return widget.NewSimpleRenderer(c)
}

func (a *bookmarkList) refresh() {
	if len(a.bookmarks) == 0 {
		a.empty.Show()
		a.list.Hide()
	} else {
		a.empty.Hide()
		a.list.Show()
	}
	a.list.Refresh()
}
