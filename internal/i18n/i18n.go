// Package i18n provides translation lookups and localized number rendering
// for the app display languages.
//
// Lookups are total: a missing key falls back to the key itself and a
// missing language falls back to English. Nothing in this package can fail.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported app display languages.
const (
	LangEnglish = "en"
	LangBengali = "bn"
	LangArabic  = "ar"
)

// Languages lists the supported app display languages.
var Languages = []string{LangEnglish, LangBengali, LangArabic}

// Name returns the native display name of an app language code.
// Unknown codes are returned unchanged.
func Name(lang string) string {
	switch lang {
	case LangEnglish:
		return "English"
	case LangBengali:
		return "বাংলা"
	case LangArabic:
		return "العربية"
	}
	return lang
}

// Tag returns the BCP 47 tag for an app language code.
// Unknown codes map to English.
func Tag(lang string) language.Tag {
	switch lang {
	case LangBengali:
		return language.Bengali
	case LangArabic:
		return language.Arabic
	}
	return language.English
}

// T returns the translation of key for the given language.
// When no translation exists the key itself is returned.
func T(lang, key string) string {
	if m, ok := catalog[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := catalog[LangEnglish][key]; ok {
		return s
	}
	return key
}

// digit maps for non-Latin numeral scripts, indexed by the Latin digit value.
var numerals = map[string][]rune{
	LangBengali: []rune("০১২৩৪৫৬৭৮৯"),
	LangArabic:  []rune("٠١٢٣٤٥٦٧٨٩"),
}

// FormatNumber renders v in the numeral script of the given language.
// Languages without a dedicated script return the unchanged Latin digits.
// This is purely a display transform.
func FormatNumber(lang string, v int) string {
	s := itoa(v)
	digits, ok := numerals[lang]
	if !ok {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(digits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [24]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
