// Package settings provides typed access to the user settings of the app.
//
// Every value has a default which is returned when no value was persisted
// yet or when a persisted value can not be interpreted. This keeps older
// persisted settings forward compatible: unknown or missing fields simply
// fall back to their defaults.
package settings

import (
	"log/slog"
	"slices"

	"fyne.io/fyne/v2"
	"github.com/ErikKalkoken/go-set"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/i18n"
)

// ColorTheme is the name of a color theme.
type ColorTheme string

const (
	Auto  ColorTheme = "Auto"
	Dark  ColorTheme = "Dark"
	Light ColorTheme = "Light"
)

// Font size levels for the reader.
const (
	FontSizeMin     = 1
	FontSizeMax     = 5
	fontSizeDefault = 3
)

// PlaybackRates is the discrete set of supported playback rates.
var PlaybackRates = []float64{0.5, 0.75, 1.0, 1.25, 1.5, 2.0}

// TranslationSelection is the mode for choosing translation languages.
type TranslationSelection string

const (
	TranslationAuto   TranslationSelection = "auto"   // follow the app language
	TranslationManual TranslationSelection = "manual" // explicit resource selection
)

// setting keys
const (
	settingAppLanguage          = "app-language"
	settingColorTheme           = "color-theme"
	settingFirstRunDone         = "first-run-done"
	settingFontSize             = "font-size"
	settingLocationLat          = "location-lat"
	settingLocationLon          = "location-lon"
	settingLocationName         = "location-name"
	settingLogLevel             = "log-level"
	settingPlaybackRate         = "playback-rate"
	settingReciterID            = "reciter-id"
	settingRepeatMode           = "repeat-mode"
	settingSelectedTranslations = "selected-translations"
	settingShowArabic           = "show-arabic"
	settingShowTranslation      = "show-translation"
	settingVolume               = "volume"
	settingWindowHeight         = "window-height"
	settingWindowWidth          = "window-width"
)

// defaults
const (
	settingAppLanguageDefault  = i18n.LangEnglish
	settingLogLevelDefault     = "warn"
	settingReciterIDDefault    = 1
	settingTranslationDefault  = 131 // Dr. Mustafa Khattab, The Clear Quran
	settingWindowHeightDefault = 600
	settingWindowWidthDefault  = 1000
)

// Settings provides typed access to user settings plus defaults.
type Settings struct {
	p fyne.Preferences
}

func New(p fyne.Preferences) *Settings {
	return &Settings{p: p}
}

func (s *Settings) AppLanguage() string {
	return s.p.StringWithFallback(settingAppLanguage, settingAppLanguageDefault)
}

func (s *Settings) SetAppLanguage(v string) {
	s.p.SetString(settingAppLanguage, v)
}

func (s *Settings) ColorTheme() ColorTheme {
	name := s.p.StringWithFallback(settingColorTheme, string(Auto))
	switch v := ColorTheme(name); v {
	case Auto, Dark, Light:
		return v
	}
	return Auto
}

func (s *Settings) SetColorTheme(v ColorTheme) {
	s.p.SetString(settingColorTheme, string(v))
}

func (s *Settings) FirstRunDone() bool {
	return s.p.BoolWithFallback(settingFirstRunDone, false)
}

func (s *Settings) SetFirstRunDone() {
	s.p.SetBool(settingFirstRunDone, true)
}

// FontSize returns the font size level for the reader.
// Values are stored as given and not validated;
// consumers are expected to fall back to a safe style for unknown levels.
func (s *Settings) FontSize() int {
	return s.p.IntWithFallback(settingFontSize, fontSizeDefault)
}

func (s *Settings) SetFontSize(v int) {
	s.p.SetInt(settingFontSize, v)
}

// Location returns the stored geographic location.
// Each field falls back independently, so partially persisted locations
// degrade per field instead of dropping the whole value.
func (s *Settings) Location() app.Location {
	return app.Location{
		Coordinates: app.Coordinates{
			Lat: s.p.FloatWithFallback(settingLocationLat, 0),
			Lon: s.p.FloatWithFallback(settingLocationLon, 0),
		},
		Name: s.p.StringWithFallback(settingLocationName, ""),
	}
}

func (s *Settings) SetLocation(v app.Location) {
	s.p.SetFloat(settingLocationLat, v.Lat)
	s.p.SetFloat(settingLocationLon, v.Lon)
	s.p.SetString(settingLocationName, v.Name)
}

func (s *Settings) LogLevel() string {
	return s.p.StringWithFallback(settingLogLevel, settingLogLevelDefault)
}

// LogLevelSlog returns the current log level as slog.Level.
func (s *Settings) LogLevelSlog() slog.Level {
	m := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	v, ok := m[s.LogLevel()]
	if !ok {
		return slog.LevelWarn
	}
	return v
}

func (s *Settings) SetLogLevel(v string) {
	s.p.SetString(settingLogLevel, v)
}

func (s *Settings) PlaybackRate() float64 {
	return s.p.FloatWithFallback(settingPlaybackRate, 1.0)
}

func (s *Settings) SetPlaybackRate(v float64) {
	s.p.SetFloat(settingPlaybackRate, v)
}

func (s *Settings) ReciterID() int {
	return s.p.IntWithFallback(settingReciterID, settingReciterIDDefault)
}

func (s *Settings) SetReciterID(v int) {
	s.p.SetInt(settingReciterID, v)
}

func (s *Settings) RepeatMode() app.RepeatMode {
	return app.RepeatModeFromString(s.p.StringWithFallback(settingRepeatMode, "none"))
}

func (s *Settings) SetRepeatMode(v app.RepeatMode) {
	s.p.SetString(settingRepeatMode, v.String())
}

// SelectedTranslationIDs returns the ids of the selected translation
// resources. The result is a set, so ids can never be duplicated.
func (s *Settings) SelectedTranslationIDs() set.Set[int] {
	ids := s.p.IntListWithFallback(settingSelectedTranslations, []int{settingTranslationDefault})
	return set.Of(ids...)
}

func (s *Settings) SetSelectedTranslationIDs(v set.Set[int]) {
	s.p.SetIntList(settingSelectedTranslations, slices.Collect(v.All()))
}

// ToggleTranslationID adds the id when absent and removes it when present.
func (s *Settings) ToggleTranslationID(id int) {
	ids := s.SelectedTranslationIDs()
	if ids.Contains(id) {
		ids.Delete(id)
	} else {
		ids.Add(id)
	}
	s.SetSelectedTranslationIDs(ids)
}

func (s *Settings) ShowArabic() bool {
	return s.p.BoolWithFallback(settingShowArabic, true)
}

func (s *Settings) SetShowArabic(v bool) {
	s.p.SetBool(settingShowArabic, v)
}

func (s *Settings) ShowTranslation() bool {
	return s.p.BoolWithFallback(settingShowTranslation, true)
}

func (s *Settings) SetShowTranslation(v bool) {
	s.p.SetBool(settingShowTranslation, v)
}

// Volume returns the audio volume in the range 0..1.
func (s *Settings) Volume() float64 {
	return s.p.FloatWithFallback(settingVolume, 1.0)
}

func (s *Settings) SetVolume(v float64) {
	s.p.SetFloat(settingVolume, v)
}

func (s *Settings) WindowSize() fyne.Size {
	return fyne.NewSize(
		float32(s.p.IntWithFallback(settingWindowWidth, settingWindowWidthDefault)),
		float32(s.p.IntWithFallback(settingWindowHeight, settingWindowHeightDefault)),
	)
}

func (s *Settings) SetWindowSize(v fyne.Size) {
	s.p.SetInt(settingWindowWidth, int(v.Width))
	s.p.SetInt(settingWindowHeight, int(v.Height))
}
