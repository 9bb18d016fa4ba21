package main

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorHex renders c as #rrggbb. Fully transparent colors show as the
// background.
func colorHex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		cf, _ = colorful.MakeColor(BackgroundColor)
	}
	return cf.Hex()
}

func lipColor(c color.Color) lipgloss.Color {
	return lipgloss.Color(colorHex(c))
}
