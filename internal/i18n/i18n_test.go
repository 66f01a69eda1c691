package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/alfurqan/alfurqan/internal/i18n"
)

func TestT(t *testing.T) {
	t.Run("returns translation for known key", func(t *testing.T) {
		assert.Equal(t, "কুরআন", i18n.T("bn", "nav.quran"))
	})
	t.Run("falls back to english for missing translation", func(t *testing.T) {
		assert.Equal(t, "Update available", i18n.T("bn", "update.available"))
	})
	t.Run("falls back to raw key for unknown key", func(t *testing.T) {
		assert.Equal(t, "no.such.key", i18n.T("en", "no.such.key"))
	})
	t.Run("falls back to raw key for unknown language and key", func(t *testing.T) {
		assert.Equal(t, "no.such.key", i18n.T("xx", "no.such.key"))
	})
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		lang string
		in   int
		want string
	}{
		{"en", 123, "123"},
		{"bn", 123, "১২৩"},
		{"bn", 0, "০"},
		{"ar", 45, "٤٥"},
		{"bn", -7, "-৭"},
		{"xx", 99, "99"},
	}
	for _, tc := range cases {
		t.Run(tc.lang+"/"+tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, i18n.FormatNumber(tc.lang, tc.in))
		})
	}
}

func TestTag(t *testing.T) {
	assert.Equal(t, language.Bengali, i18n.Tag("bn"))
	assert.Equal(t, language.Arabic, i18n.Tag("ar"))
	assert.Equal(t, language.English, i18n.Tag("en"))
	assert.Equal(t, language.English, i18n.Tag("whatever"))
}
