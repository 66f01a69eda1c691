package settings_test

import (
	"log/slog"
	"testing"

	"github.com/ErikKalkoken/go-set"
	"github.com/stretchr/testify/assert"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/settings"
)

func TestSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		assert.Equal(t, "en", s.AppLanguage())
		assert.Equal(t, 3, s.FontSize())
		assert.True(t, s.ShowArabic())
		assert.True(t, s.ShowTranslation())
		assert.Equal(t, 1, s.ReciterID())
		assert.Equal(t, 1.0, s.Volume())
		assert.Equal(t, 1.0, s.PlaybackRate())
		assert.Equal(t, app.RepeatNone, s.RepeatMode())
		assert.False(t, s.FirstRunDone())
		assert.True(t, s.Location().IsZero())
	})
	t.Run("fields not set remain at their defaults after a partial update", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		s.SetFontSize(5)
		assert.Equal(t, 5, s.FontSize())
		assert.True(t, s.ShowArabic())
		assert.Equal(t, 1, s.ReciterID())
	})
	t.Run("log level", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		s.SetLogLevel("debug")
		assert.Equal(t, "debug", s.LogLevel())
		assert.Equal(t, slog.LevelDebug, s.LogLevelSlog())
	})
	t.Run("unknown log level falls back to warn", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		s.SetLogLevel("verbose")
		assert.Equal(t, slog.LevelWarn, s.LogLevelSlog())
	})
	t.Run("location round trip", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		x := app.Location{Coordinates: app.Coordinates{Lat: 23.81, Lon: 90.41}, Name: "Dhaka"}
		s.SetLocation(x)
		assert.Equal(t, x, s.Location())
	})
	t.Run("repeat mode round trip", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		s.SetRepeatMode(app.RepeatAll)
		assert.Equal(t, app.RepeatAll, s.RepeatMode())
	})
	t.Run("out of range font size is stored as given", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		s.SetFontSize(99)
		assert.Equal(t, 99, s.FontSize())
	})
}

func TestColorTheme(t *testing.T) {
	t.Run("default theme", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		assert.Equal(t, settings.Auto, s.ColorTheme())
	})
	t.Run("can set and get theme", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		s.SetColorTheme(settings.Dark)
		assert.Equal(t, settings.Dark, s.ColorTheme())
	})
}

func TestSelectedTranslations(t *testing.T) {
	t.Run("default selection", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		assert.True(t, s.SelectedTranslationIDs().Contains(131))
	})
	t.Run("round trip", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		x := set.Of(20, 131)
		s.SetSelectedTranslationIDs(x)
		assert.True(t, s.SelectedTranslationIDs().Equal(x))
	})
	t.Run("toggle adds when absent", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		s.SetSelectedTranslationIDs(set.Of(131))
		s.ToggleTranslationID(20)
		assert.True(t, s.SelectedTranslationIDs().Equal(set.Of(20, 131)))
	})
	t.Run("toggle removes when present and never double adds", func(t *testing.T) {
		s := settings.New(settings.NewMyPref())
		s.SetSelectedTranslationIDs(set.Of(131))
		s.ToggleTranslationID(20)
		s.ToggleTranslationID(20)
		assert.True(t, s.SelectedTranslationIDs().Equal(set.Of(131)))
		assert.Equal(t, 1, s.SelectedTranslationIDs().Size())
	})
}
