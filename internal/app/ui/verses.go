package ui

import (
	"context"
	"fmt"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/quranservice"
)

const versesPerPage = 20

// verseReader shows the verses of one surah with load-more pagination.
// Fetched pages are appended to the accumulated list, not replacing it.
type verseReader struct {
	widget.BaseWidget

	surah    app.Surah
	verses   []app.Verse
	page     int
	hasNext  bool
	list     *widget.List
	status   *widget.Label
	retry    *widget.Button
	loadMore *widget.Button
	u        *UI
}

func showVerseReader(u *UI, s app.Surah) {
	a := newVerseReader(u, s)
	w := u.fyneApp.NewWindow(fmt.Sprintf("%s - %s", s.Name, u.t("app.title")))
	w.Resize(fyne.NewSize(700, 600))
	w.SetContent(a)
	w.Show()
	a.loadNext()
}

func newVerseReader(u *UI, s app.Surah) *verseReader {
	a := &verseReader{
		surah:   s,
		verses:  make([]app.Verse, 0),
		hasNext: true,
		status:  widget.NewLabel(""),
		u:       u,
	}
	a.ExtendBaseWidget(a)
	a.retry = widget.NewButton(u.t("common.retry"), func() {
		a.loadNext()
	})
	a.retry.Hide()
	a.loadMore = widget.NewButton(u.t("common.loadMore"), func() {
		a.loadNext()
	})
	a.loadMore.Hide()
	a.list = widget.NewList(
		func() int {
			return len(a.verses)
		},
		func() fyne.CanvasObject {
			return newVerseItem(u)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.verses) {
				return
			}
			co.(*verseItem).set(a.surah, a.verses[id])
			a.list.SetItemHeight(id, co.MinSize().Height)
		},
	)
	return a
}

func (a *verseReader) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewBorder(
		nil,
		container.NewVBox(widget.NewSeparator(), container.NewHBox(a.status, a.retry, a.loadMore)),
		nil, nil,
		a.list,
	)
	return widget.NewSimpleRenderer(c)
}

func (a *verseReader) loadNext() {
	if !a.hasNext {
		return
	}
	a.status.SetText(a.u.t("common.loading"))
	a.retry.Hide()
	a.loadMore.Hide()
	page := a.page + 1
	go func() {
		vp, err := a.u.quran.Verses(context.Background(), quranservice.VersesParams{
			SurahID:        a.surah.ID,
			Language:       a.u.settings.AppLanguage(),
			TranslationIDs: slices.Collect(a.u.settings.SelectedTranslationIDs().All()),
			Page:           page,
			PerPage:        versesPerPage,
		})
		fyne.Do(func() {
			if err != nil {
				a.status.SetText(a.u.t("common.failed"))
				a.retry.Show()
				return
			}
			a.verses = append(a.verses, vp.Verses...)
			a.page = vp.CurrentPage
			a.hasNext = vp.HasNext()
			a.status.SetText("")
			if a.hasNext {
				a.loadMore.Show()
			}
			a.list.Refresh()
		})
	}()
}

// verseItem renders one verse with its translations and actions.
type verseItem struct {
	widget.BaseWidget

	key      *widget.Label
	arabic   *widget.Label
	trans    *widget.Label
	play     *widget.Button
	bookmark *widget.Button
	tafsir   *widget.Button
	surah    app.Surah
	verse    app.Verse
	u        *UI
}

// Tafsir Ibn Kathir (English) on the Quran.com API.
const tafsirResourceID = 169

func newVerseItem(u *UI) *verseItem {
	a := &verseItem{
		key:    widget.NewLabel(""),
		arabic: widget.NewLabel(""),
		trans:  widget.NewLabel(""),
		u:      u,
	}
	a.ExtendBaseWidget(a)
	a.arabic.Wrapping = fyne.TextWrapWord
	a.arabic.Alignment = fyne.TextAlignTrailing
	a.trans.Wrapping = fyne.TextWrapWord
	a.play = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		u.playAyah(a.surah.ID, a.verse.VerseNumber)
	})
	a.bookmark = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		u.userdata.ToggleBookmark(context.Background(), app.Bookmark{
			SurahID:   a.surah.ID,
			AyahID:    a.verse.VerseNumber,
			SurahName: a.surah.Name,
		})
		a.refreshBookmark()
	})
	a.tafsir = widget.NewButton(u.t("reader.tafsir"), func() {
		a.showTafsir()
	})
	return a
}

// showTafsir opens the commentary for this verse in a new window.
func (a *verseItem) showTafsir() {
	u := a.u
	verseKey := a.verse.VerseKey
	text := widget.NewLabel(u.t("common.loading"))
	text.Wrapping = fyne.TextWrapWord
	w := u.fyneApp.NewWindow(fmt.Sprintf("%s %s - %s", u.t("reader.tafsir"), verseKey, u.t("app.title")))
	w.Resize(fyne.NewSize(600, 500))
	w.SetContent(container.NewVScroll(text))
	w.Show()
	go func() {
		t, err := u.quran.Tafsir(context.Background(), tafsirResourceID, verseKey)
		fyne.Do(func() {
			if err != nil {
				text.SetText(u.t("common.failed"))
				return
			}
			text.SetText(t.Text)
		})
	}()
}

func (a *verseItem) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewVBox(
		container.NewHBox(a.key, a.play, a.bookmark, a.tafsir),
		a.arabic,
		a.trans,
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(c)
}

func (a *verseItem) set(s app.Surah, v app.Verse) {
	a.surah = s
	a.verse = v
	a.key.SetText(v.VerseKey)
	if a.u.settings.ShowArabic() {
		a.arabic.SetText(v.TextArabic)
		a.arabic.Show()
	} else {
		a.arabic.Hide()
	}
	if a.u.settings.ShowTranslation() {
		var s string
		for i, t := range v.Translations {
			if i > 0 {
				s += "\n\n"
			}
			s += t.Text
		}
		a.trans.SetText(s)
		a.trans.Show()
	} else {
		a.trans.Hide()
	}
	a.refreshBookmark()
}

func (a *verseItem) refreshBookmark() {
	if a.u.userdata.IsBookmarked(a.surah.ID, a.verse.VerseNumber) {
		a.bookmark.SetIcon(theme.ConfirmIcon())
	} else {
		a.bookmark.SetIcon(theme.ContentAddIcon())
	}
}
