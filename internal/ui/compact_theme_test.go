package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestCompactTheme_Palette(t *testing.T) {
	th := NewCompactTheme()

	for _, v := range []fyne.ThemeVariant{theme.VariantDark, theme.VariantLight} {
		assert.Equal(t, color.Color(colorBackground), th.Color(theme.ColorNameBackground, v))
		assert.Equal(t, color.Color(colorPrimary), th.Color(theme.ColorNamePrimary, v))
		assert.Equal(t, color.Color(color.White), th.Color(theme.ColorNameForeground, v))
	}

	assert.Equal(t, float32(13), th.Size(theme.SizeNameText))
}
