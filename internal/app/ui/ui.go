// Package ui contains the user interface of the app.
package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/documentservice"
	"github.com/alfurqan/alfurqan/internal/app/hadithservice"
	"github.com/alfurqan/alfurqan/internal/app/libraryservice"
	"github.com/alfurqan/alfurqan/internal/app/playerservice"
	"github.com/alfurqan/alfurqan/internal/app/prayerservice"
	"github.com/alfurqan/alfurqan/internal/app/quranservice"
	"github.com/alfurqan/alfurqan/internal/app/settings"
	"github.com/alfurqan/alfurqan/internal/app/userdata"
	"github.com/alfurqan/alfurqan/internal/i18n"
)

// StreamPlayer plays live audio streams, e.g. for the radio views.
type StreamPlayer interface {
	PlayStream(url string) error
	Stop()
}

// UI is the root object of the user interface.
type UI struct {
	CacheService app.CacheService

	fyneApp  fyne.App
	window   fyne.Window
	settings *settings.Settings
	userdata *userdata.UserData
	player   *playerservice.PlayerService
	stream   StreamPlayer
	quran    *quranservice.QuranService
	prayer   *prayerservice.PrayerService
	hadith   *hadithservice.HadithService
	library  *libraryservice.LibraryService
	document *documentservice.DocumentService

	appVersion string
	playerBar  *playerBar
	statusBar  *statusBar
	tabs       *container.AppTabs
}

type Params struct {
	FyneApp         fyne.App
	Settings        *settings.Settings
	UserData        *userdata.UserData
	PlayerService   *playerservice.PlayerService
	StreamPlayer    StreamPlayer
	QuranService    *quranservice.QuranService
	PrayerService   *prayerservice.PrayerService
	HadithService   *hadithservice.HadithService
	LibraryService  *libraryservice.LibraryService
	DocumentService *documentservice.DocumentService
	// optional
	AppVersion string
}

// NewUI creates a new UI and returns it.
func NewUI(arg Params) *UI {
	u := &UI{
		fyneApp:    arg.FyneApp,
		settings:   arg.Settings,
		userdata:   arg.UserData,
		player:     arg.PlayerService,
		stream:     arg.StreamPlayer,
		quran:      arg.QuranService,
		prayer:     arg.PrayerService,
		hadith:     arg.HadithService,
		library:    arg.LibraryService,
		document:   arg.DocumentService,
		appVersion: arg.AppVersion,
	}
	return u
}

// Init builds the window content. Must be called before ShowAndRun.
func (u *UI) Init() {
	u.applyTheme()
	u.window = u.fyneApp.NewWindow(u.t("app.title"))
	u.window.Resize(u.settings.WindowSize())
	u.playerBar = newPlayerBar(u)
	u.statusBar = newStatusBar(u)
	u.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(u.t("nav.quran"), theme.DocumentIcon(), newSurahList(u)),
		container.NewTabItemWithIcon(u.t("nav.bookmarks"), theme.ContentAddIcon(), newBookmarkList(u)),
		container.NewTabItemWithIcon(u.t("nav.prayer"), theme.HistoryIcon(), newPrayerTimes(u)),
		container.NewTabItemWithIcon(u.t("nav.calendar"), theme.GridIcon(), newCalendarView(u)),
		container.NewTabItemWithIcon(u.t("nav.qibla"), theme.NavigateNextIcon(), newQiblaView(u)),
		container.NewTabItemWithIcon(u.t("nav.hadith"), theme.ListIcon(), newHadithBrowser(u)),
		container.NewTabItemWithIcon(u.t("nav.radio"), theme.MediaMusicIcon(), newRadioList(u)),
		container.NewTabItemWithIcon(u.t("nav.library"), theme.FolderIcon(), newLibraryBrowser(u)),
		container.NewTabItemWithIcon(u.t("nav.settings"), theme.SettingsIcon(), newSettingsView(u)),
	)
	u.tabs.SetTabLocation(container.TabLocationLeading)
	u.window.SetContent(container.NewBorder(
		nil,
		container.NewVBox(u.playerBar, u.statusBar),
		nil,
		nil,
		u.tabs,
	))
	u.window.SetOnClosed(func() {
		u.settings.SetWindowSize(u.window.Canvas().Size())
	})
}

// ShowAndRun shows the main window and runs the app. It blocks.
func (u *UI) ShowAndRun() {
	u.fyneApp.Lifecycle().SetOnStarted(func() {
		if !u.settings.FirstRunDone() {
			u.showFirstRunDialog()
		}
		u.statusBar.startUpdateCheck()
	})
	u.window.ShowAndRun()
}

// t returns the translation for a key in the current app language.
func (u *UI) t(key string) string {
	return i18n.T(u.settings.AppLanguage(), key)
}

// formatNumber renders a number in the numerals of the app language.
func (u *UI) formatNumber(n int) string {
	return i18n.FormatNumber(u.settings.AppLanguage(), n)
}

// applyTheme applies the configured color theme.
// Selecting dark or light forces the variant for the whole app.
func (u *UI) applyTheme() {
	switch u.settings.ColorTheme() {
	case settings.Dark:
		u.fyneApp.Settings().SetTheme(newForcedVariantTheme(theme.VariantDark))
	case settings.Light:
		u.fyneApp.Settings().SetTheme(newForcedVariantTheme(theme.VariantLight))
	default:
		u.fyneApp.Settings().SetTheme(theme.DefaultTheme())
	}
}

// showFirstRunDialog asks for the app language on the first start.
func (u *UI) showFirstRunDialog() {
	langs := i18n.Languages
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, i18n.Name(l))
	}
	sel := widget.NewSelect(names, nil)
	sel.SetSelectedIndex(0)
	d := dialog.NewCustomConfirm(
		u.t("firstrun.choose"), u.t("common.close"), u.t("common.cancel"), sel,
		func(ok bool) {
			if ok && sel.SelectedIndex() >= 0 {
				u.settings.SetAppLanguage(langs[sel.SelectedIndex()])
			}
			u.settings.SetFirstRunDone()
		},
		u.window,
	)
	d.Show()
}

// showErrorDialog reports an unexpected error to the user.
func (u *UI) showErrorDialog(message string, err error) {
	slog.Error(message, "error", err)
	dialog.ShowError(err, u.window)
}

// resolveAudioURL derives the audio URL for an ayah
// with the reciter from the settings.
func (u *UI) resolveAudioURL(surahID, ayahID int) string {
	r := quranservice.ReciterByID(u.settings.ReciterID())
	return quranservice.AudioURL(r, surahID, ayahID)
}

// playAyah starts a playback session for one ayah.
func (u *UI) playAyah(surahID, ayahID int) {
	ctx := context.Background()
	u.player.PlayAyah(ctx, surahID, ayahID, u.resolveAudioURL(surahID, ayahID))
	u.userdata.SetLastPlayedAyah(ctx, surahID, ayahID)
}
