package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app/documentservice"
)

const (
	zoomMin  = 0.5
	zoomMax  = 3.0
	zoomStep = 0.25
)

// documentViewer renders the pages of a fetched PDF document.
// It has a single page mode with explicit paging and a continuous
// mode that renders pages lazily while scrolling.
type documentViewer struct {
	widget.BaseWidget

	doc        *documentservice.Document
	docURL     string
	page       int // zero based
	zoom       float64
	continuous bool
	image      *canvas.Image
	pages      *widget.List
	content    *fyne.Container
	indicator  *widget.Label
	status     *widget.Label
	u          *UI
	window     fyne.Window
}

// showDocumentViewer fetches a document and opens it in a new window.
// When the document can not be used the original URL is opened
// externally instead.
func showDocumentViewer(u *UI, title, docURL string) {
	a := &documentViewer{
		docURL:    docURL,
		zoom:      1.0,
		image:     canvas.NewImageFromImage(nil),
		indicator: widget.NewLabel(""),
		status:    widget.NewLabel(u.t("common.loading")),
		u:         u,
	}
	a.ExtendBaseWidget(a)
	a.image.FillMode = canvas.ImageFillContain
	a.image.SetMinSize(fyne.NewSize(400, 550))
	w := u.fyneApp.NewWindow(fmt.Sprintf("%s - %s", title, u.t("app.title")))
	a.window = w
	w.Resize(fyne.NewSize(700, 800))
	w.SetContent(a)
	w.SetOnClosed(func() {
		if a.doc != nil {
			a.doc.Close()
		}
	})
	w.Show()
	go func() {
		data, err := u.document.Fetch(context.Background(), docURL)
		var doc *documentservice.Document
		if err == nil {
			doc, err = u.document.Open(data)
		}
		fyne.Do(func() {
			if errors.Is(err, documentservice.ErrFallback) {
				a.openExternally()
				w.Close()
				return
			}
			if err != nil {
				a.status.SetText(u.t("common.failed"))
				slog.Error("Failed to load document", "url", docURL, "error", err)
				return
			}
			a.doc = doc
			a.status.SetText("")
			a.render()
		})
	}()
}

func (a *documentViewer) CreateRenderer() fyne.WidgetRenderer {
	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		a.showPage(a.page - 1)
	})
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		a.showPage(a.page + 1)
	})
	zoomOut := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
		a.setZoom(a.zoom - zoomStep)
	})
	zoomIn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
		a.setZoom(a.zoom + zoomStep)
	})
	mode := widget.NewButtonWithIcon("", theme.ListIcon(), func() {
		a.toggleMode()
	})
	fallback := widget.NewButton(a.u.t("document.fallback"), func() {
		a.openExternally()
		a.window.Close()
	})
	toolbar := container.NewHBox(
		prev, a.indicator, next,
		widget.NewSeparator(),
		zoomOut, zoomIn, mode,
		widget.NewSeparator(),
		fallback,
		a.status,
	)
	a.pages = a.makePagesList()
	a.content = container.NewStack(container.NewScroll(a.image))
	c := container.NewBorder(
		toolbar,
		nil, nil, nil,
		a.content,
	)
	return widget.NewSimpleRenderer(c)
}

// makePagesList returns the lazily rendering page list for continuous
// mode. Rendering a row also updates the current page indicator, which
// keeps it in sync with the scroll position.
func (a *documentViewer) makePagesList() *widget.List {
	l := widget.NewList(
		func() int {
			if a.doc == nil {
				return 0
			}
			return a.doc.NumPages()
		},
		func() fyne.CanvasObject {
			img := canvas.NewImageFromImage(nil)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(400, 550))
			return img
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			a.page = id
			a.updateIndicator()
			img := co.(*canvas.Image)
			img.Image = nil
			img.Refresh()
			go func() {
				x, err := a.u.document.RenderPage(context.Background(), a.doc, id, a.zoom)
				if err != nil {
					return
				}
				fyne.Do(func() {
					img.Image = x
					img.Refresh()
					a.pages.SetItemHeight(id, float32(x.Bounds().Dy()))
				})
			}()
		},
	)
	return l
}

func (a *documentViewer) toggleMode() {
	if a.doc == nil {
		return
	}
	a.continuous = !a.continuous
	a.content.RemoveAll()
	if a.continuous {
		a.content.Add(a.pages)
		a.pages.Refresh()
		a.pages.ScrollTo(a.page)
	} else {
		a.content.Add(container.NewScroll(a.image))
		a.render()
	}
	a.content.Refresh()
}

func (a *documentViewer) showPage(page int) {
	if a.doc == nil || a.continuous || page < 0 || page >= a.doc.NumPages() {
		return
	}
	a.page = page
	a.render()
}

func (a *documentViewer) setZoom(zoom float64) {
	if a.doc == nil || zoom < zoomMin || zoom > zoomMax {
		return
	}
	a.zoom = zoom
	if a.continuous {
		a.pages.Refresh()
	} else {
		a.render()
	}
}

func (a *documentViewer) updateIndicator() {
	a.indicator.SetText(fmt.Sprintf(
		"%s %s / %s",
		a.u.t("document.page"),
		a.u.formatNumber(a.page+1),
		a.u.formatNumber(a.doc.NumPages()),
	))
}

func (a *documentViewer) render() {
	page := a.page
	a.updateIndicator()
	go func() {
		img, err := a.u.document.RenderPage(context.Background(), a.doc, page, a.zoom)
		fyne.Do(func() {
			if err != nil {
				// a newer render for the same slot cancels this one
				if errors.Is(err, context.Canceled) {
					return
				}
				a.status.SetText(a.u.t("common.failed"))
				return
			}
			if page != a.page {
				return // superseded by another page
			}
			a.status.SetText("")
			a.image.Image = img
			a.image.Refresh()
		})
	}()
}

func (a *documentViewer) openExternally() {
	x, err := url.Parse(a.docURL)
	if err != nil {
		a.u.showErrorDialog("Failed to parse document URL", err)
		return
	}
	if err := a.u.fyneApp.OpenURL(x); err != nil {
		a.u.showErrorDialog("Failed to open document externally", err)
	}
}
