package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/quranservice"
	"github.com/alfurqan/alfurqan/internal/app/settings"
	"github.com/alfurqan/alfurqan/internal/i18n"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// settingsView lets the user change all app settings.
type settingsView struct {
	widget.BaseWidget

	u *UI
}

func newSettingsView(u *UI) *settingsView {
	a := &settingsView{u: u}
	a.ExtendBaseWidget(a)
	return a
}

func (a *settingsView) CreateRenderer() fyne.WidgetRenderer {
	u := a.u
	form := widget.NewForm(
		widget.NewFormItem(u.t("settings.language"), a.makeLanguageSelect()),
		widget.NewFormItem(u.t("settings.theme"), a.makeThemeSelect()),
		widget.NewFormItem(u.t("settings.fontSize"), a.makeFontSizeSelect()),
		widget.NewFormItem(u.t("settings.showArabic"), a.makeShowArabicCheck()),
		widget.NewFormItem(u.t("settings.showTrans"), a.makeShowTranslationCheck()),
		widget.NewFormItem(u.t("settings.translations"), a.makeTranslationsButton()),
		widget.NewFormItem(u.t("settings.reciter"), a.makeReciterSelect()),
		widget.NewFormItem(u.t("settings.repeat"), a.makeRepeatSelect()),
		widget.NewFormItem(u.t("settings.volume"), a.makeVolumeSlider()),
		widget.NewFormItem(u.t("settings.rate"), a.makeRateSelect()),
		widget.NewFormItem(u.t("settings.location"), a.makeLocationButton()),
		widget.NewFormItem("Log level", a.makeLogLevelSelect()),
		widget.NewFormItem("Cache", a.makeClearCacheButton()),
	)
	return widget.NewSimpleRenderer(container.NewVScroll(form))
}

func (a *settingsView) makeLanguageSelect() *widget.Select {
	u := a.u
	names := make([]string, 0, len(i18n.Languages))
	for _, l := range i18n.Languages {
		names = append(names, i18n.Name(l))
	}
	sel := widget.NewSelect(names, func(s string) {
		for _, l := range i18n.Languages {
			if i18n.Name(l) == s {
				u.settings.SetAppLanguage(l)
				return
			}
		}
	})
	sel.SetSelected(i18n.Name(u.settings.AppLanguage()))
	return sel
}

func (a *settingsView) makeThemeSelect() *widget.Select {
	u := a.u
	themes := []string{string(settings.Auto), string(settings.Dark), string(settings.Light)}
	sel := widget.NewSelect(themes, func(s string) {
		u.settings.SetColorTheme(settings.ColorTheme(s))
		u.applyTheme()
	})
	sel.SetSelected(string(u.settings.ColorTheme()))
	return sel
}

func (a *settingsView) makeFontSizeSelect() *widget.Select {
	u := a.u
	sizes := make([]string, 0, settings.FontSizeMax)
	for i := settings.FontSizeMin; i <= settings.FontSizeMax; i++ {
		sizes = append(sizes, strconv.Itoa(i))
	}
	sel := widget.NewSelect(sizes, func(s string) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		u.settings.SetFontSize(v)
	})
	sel.SetSelected(strconv.Itoa(u.settings.FontSize()))
	return sel
}

func (a *settingsView) makeShowArabicCheck() *widget.Check {
	u := a.u
	c := widget.NewCheck("", func(on bool) {
		u.settings.SetShowArabic(on)
	})
	c.SetChecked(u.settings.ShowArabic())
	return c
}

func (a *settingsView) makeShowTranslationCheck() *widget.Check {
	u := a.u
	c := widget.NewCheck("", func(on bool) {
		u.settings.SetShowTranslation(on)
	})
	c.SetChecked(u.settings.ShowTranslation())
	return c
}

// makeTranslationsButton opens a dialog for selecting the translation
// resources shown in the reader.
func (a *settingsView) makeTranslationsButton() *widget.Button {
	u := a.u
	return widget.NewButton(u.t("settings.translations"), func() {
		var resources []app.TranslationResource
		status := widget.NewLabel(u.t("common.loading"))
		list := widget.NewList(
			func() int {
				return len(resources)
			},
			func() fyne.CanvasObject {
				return widget.NewCheck("translation", nil)
			},
			func(id widget.ListItemID, co fyne.CanvasObject) {
				if id >= len(resources) {
					return
				}
				r := resources[id]
				c := co.(*widget.Check)
				c.Text = fmt.Sprintf("%s (%s)", r.Name, r.Language)
				c.OnChanged = func(bool) {
					u.settings.ToggleTranslationID(r.ID)
				}
				c.SetChecked(u.settings.SelectedTranslationIDs().Contains(r.ID))
			},
		)
		content := container.NewBorder(status, nil, nil, nil, list)
		d := dialog.NewCustom(u.t("settings.translations"), u.t("common.close"), content, u.window)
		d.Resize(fyne.NewSize(500, 500))
		d.Show()
		go func() {
			rr, err := u.quran.TranslationResources(context.Background(), u.settings.AppLanguage())
			fyne.Do(func() {
				if err != nil {
					status.SetText(u.t("common.failed"))
					return
				}
				resources = rr
				status.SetText("")
				list.Refresh()
			})
		}()
	})
}

func (a *settingsView) makeReciterSelect() *widget.Select {
	u := a.u
	reciters := quranservice.Reciters()
	names := make([]string, 0, len(reciters))
	for _, r := range reciters {
		names = append(names, r.Name)
	}
	sel := widget.NewSelect(names, func(s string) {
		for _, r := range reciters {
			if r.Name == s {
				u.settings.SetReciterID(r.ID)
				return
			}
		}
	})
	sel.SetSelected(quranservice.ReciterByID(u.settings.ReciterID()).Name)
	return sel
}

func (a *settingsView) makeRepeatSelect() *widget.Select {
	u := a.u
	modes := []app.RepeatMode{app.RepeatNone, app.RepeatOne, app.RepeatAll}
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, m.String())
	}
	sel := widget.NewSelect(names, func(s string) {
		u.settings.SetRepeatMode(app.RepeatModeFromString(s))
	})
	sel.SetSelected(u.settings.RepeatMode().String())
	return sel
}

func (a *settingsView) makeVolumeSlider() *widget.Slider {
	u := a.u
	sl := widget.NewSlider(0, 1)
	sl.Step = 0.05
	sl.SetValue(u.settings.Volume())
	sl.OnChangeEnded = func(v float64) {
		u.player.SetVolume(v)
	}
	return sl
}

func (a *settingsView) makeRateSelect() *widget.Select {
	u := a.u
	names := make([]string, 0, len(settings.PlaybackRates))
	for _, r := range settings.PlaybackRates {
		names = append(names, fmt.Sprintf("%gx", r))
	}
	sel := widget.NewSelect(names, func(s string) {
		for i, name := range names {
			if name == s {
				u.player.SetRate(settings.PlaybackRates[i])
				return
			}
		}
	})
	sel.SetSelected(fmt.Sprintf("%gx", u.settings.PlaybackRate()))
	return sel
}

// makeLocationButton opens a dialog for searching a place by name
// and storing it as the prayer time location.
func (a *settingsView) makeLocationButton() *widget.Button {
	u := a.u
	label := u.settings.Location().Name
	if label == "" {
		label = u.t("settings.location")
	}
	b := widget.NewButton(label, nil)
	b.OnTapped = func() {
		var results []app.Location
		entry := widget.NewEntry()
		status := widget.NewLabel("")
		list := widget.NewList(
			func() int {
				return len(results)
			},
			func() fyne.CanvasObject {
				l := widget.NewLabel("location")
				l.Wrapping = fyne.TextWrapWord
				return l
			},
			func(id widget.ListItemID, co fyne.CanvasObject) {
				if id >= len(results) {
					return
				}
				co.(*widget.Label).SetText(results[id].Name)
			},
		)
		search := widget.NewButton(u.t("common.search"), func() {
			q := entry.Text
			if q == "" {
				return
			}
			status.SetText(u.t("common.loading"))
			go func() {
				ll, err := u.library.SearchLocation(context.Background(), q)
				fyne.Do(func() {
					if err != nil {
						status.SetText(u.t("common.failed"))
						return
					}
					results = ll
					status.SetText("")
					list.Refresh()
				})
			}()
		})
		entry.OnSubmitted = func(string) {
			search.OnTapped()
		}
		content := container.NewBorder(
			container.NewBorder(nil, nil, nil, search, entry),
			status,
			nil, nil,
			list,
		)
		d := dialog.NewCustom(u.t("settings.location"), u.t("common.close"), content, u.window)
		d.Resize(fyne.NewSize(500, 400))
		list.OnSelected = func(id widget.ListItemID) {
			if id >= len(results) {
				return
			}
			loc := results[id]
			u.settings.SetLocation(loc)
			b.SetText(loc.Name)
			d.Hide()
		}
		d.Show()
	}
	return b
}

func (a *settingsView) makeLogLevelSelect() *widget.Select {
	u := a.u
	sel := widget.NewSelect(logLevels, func(s string) {
		u.settings.SetLogLevel(s)
	})
	sel.SetSelected(u.settings.LogLevel())
	return sel
}

func (a *settingsView) makeClearCacheButton() *widget.Button {
	u := a.u
	return widget.NewButton("Clear cache", func() {
		if u.CacheService == nil {
			return
		}
		go u.CacheService.Clear()
	})
}
