package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme is the raw look of a menu before fonts are opened: flat colors plus
// the font to load. One theme is active per process.
type Theme struct {
	BackgroundColor      sdl.Color // Screen background
	TextColor            sdl.Color // Entry label text
	HeadingColor         sdl.Color // Menu title text
	IndicatorFillColor   sdl.Color // Submenu indicator triangle
	HighlightColor       sdl.Color // Highlighted entry background
	HighlightedTextColor sdl.Color // Text on highlighted entries
	FontPath             string
	BackgroundImagePath  string
}

var currentTheme Theme

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
