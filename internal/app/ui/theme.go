package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// forcedVariantTheme wraps the default theme and pins the variant,
// so the dark or light setting wins over the OS preference.
type forcedVariantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func newForcedVariantTheme(variant fyne.ThemeVariant) fyne.Theme {
	return forcedVariantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

func (t forcedVariantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}
