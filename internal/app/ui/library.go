package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
)

// libraryBrowser drills down the category tree of the online library.
// Subcategories and items open in their own windows.
type libraryBrowser struct {
	widget.BaseWidget

	categories []app.Category
	list       *widget.List
	status     *widget.Label
	retry      *widget.Button
	u          *UI
}

func newLibraryBrowser(u *UI) *libraryBrowser {
	a := &libraryBrowser{
		categories: make([]app.Category, 0),
		status:     widget.NewLabel(""),
		u:          u,
	}
	a.ExtendBaseWidget(a)
	a.retry = widget.NewButton(u.t("common.retry"), func() {
		a.load()
	})
	a.retry.Hide()
	a.list = widget.NewList(
		func() int {
			return len(a.categories)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(
				nil, nil, nil,
				widget.NewLabel("count"),
				widget.NewLabel("category"),
			)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.categories) {
				return
			}
			c := a.categories[id]
			row := co.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(c.Title)
			row[1].(*widget.Label).SetText(a.u.formatNumber(c.ItemsCount))
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		defer a.list.UnselectAll()
		if id >= len(a.categories) {
			return
		}
		a.open(a.categories[id])
	}
	a.load()
	return a
}

func (a *libraryBrowser) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewBorder(
		container.NewHBox(a.status, a.retry),
		nil, nil, nil,
		a.list,
	)
	return widget.NewSimpleRenderer(c)
}

func (a *libraryBrowser) load() {
	a.status.SetText(a.u.t("common.loading"))
	a.retry.Hide()
	go func() {
		cc, err := a.u.library.Categories(context.Background(), 0, a.u.settings.AppLanguage())
		fyne.Do(func() {
			if err != nil {
				a.status.SetText(a.u.t("common.failed"))
				a.retry.Show()
				return
			}
			a.categories = cc
			a.status.SetText("")
			a.list.Refresh()
		})
	}()
}

func (a *libraryBrowser) open(c app.Category) {
	if c.HasSubs {
		a.showSubCategories(c)
	} else {
		a.showItems(c)
	}
}

func (a *libraryBrowser) showSubCategories(parent app.Category) {
	var categories []app.Category
	status := widget.NewLabel(a.u.t("common.loading"))
	list := widget.NewList(
		func() int {
			return len(categories)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("category")
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(categories) {
				return
			}
			co.(*widget.Label).SetText(categories[id].Title)
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		defer list.UnselectAll()
		if id >= len(categories) {
			return
		}
		a.open(categories[id])
	}
	w := a.u.fyneApp.NewWindow(fmt.Sprintf("%s - %s", parent.Title, a.u.t("app.title")))
	w.Resize(fyne.NewSize(600, 500))
	w.SetContent(container.NewBorder(status, nil, nil, nil, list))
	w.Show()
	go func() {
		cc, err := a.u.library.Categories(context.Background(), parent.ID, a.u.settings.AppLanguage())
		fyne.Do(func() {
			if err != nil {
				status.SetText(a.u.t("common.failed"))
				return
			}
			categories = cc
			status.SetText(parent.Title)
			list.Refresh()
		})
	}()
}

func (a *libraryBrowser) showItems(c app.Category) {
	var items []app.CategoryItem
	page := 0
	hasNext := true
	status := widget.NewLabel("")
	var loadMore *widget.Button
	list := widget.NewList(
		func() int {
			return len(items)
		},
		func() fyne.CanvasObject {
			title := widget.NewLabel("item")
			title.Wrapping = fyne.TextWrapWord
			return container.NewBorder(
				nil, nil, nil,
				widget.NewButton("PDF", nil),
				title,
			)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(items) {
				return
			}
			it := items[id]
			row := co.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(it.Title)
			open := row[1].(*widget.Button)
			att, found := pdfAttachment(it)
			if !found {
				open.Hide()
				return
			}
			open.OnTapped = func() {
				showDocumentViewer(a.u, it.Title, att.URL)
			}
			open.Show()
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
			ip, err := a.u.library.Items(context.Background(), c.ID, next, a.u.settings.AppLanguage())
			fyne.Do(func() {
				if err != nil {
					status.SetText(a.u.t("common.failed"))
					loadMore.Show()
					return
				}
				items = append(items, ip.Items...)
				page = ip.CurrentPage
				hasNext = ip.HasNext()
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
	w := a.u.fyneApp.NewWindow(fmt.Sprintf("%s - %s", c.Title, a.u.t("app.title")))
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

// pdfAttachment returns the first PDF attachment of an item.
func pdfAttachment(it app.CategoryItem) (app.Attachment, bool) {
	for _, att := range it.Attachments {
		if att.PDF() {
			return att, true
		}
	}
	return app.Attachment{}, false
}
