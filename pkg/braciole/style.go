package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Style is the flat visual configuration governing a menu and every entry
// under it. One Style instance is shared by reference across the whole tree,
// which keeps visuals consistent and entries cheap to copy.
type Style struct {
	Background    sdl.Color
	Heading       TextStyle
	Item          TextStyle
	IndicatorFill sdl.Color
	Highlight     sdl.Color
	HighlightText TextStyle
}

func NewStyle(background sdl.Color, heading, item TextStyle, indicatorFill, highlight sdl.Color, highlightText TextStyle) Style {
	return Style{
		Background:    background,
		Heading:       heading,
		Item:          item,
		IndicatorFill: indicatorFill,
		Highlight:     highlight,
		HighlightText: highlightText,
	}
}

// DefaultStyle builds a Style from the active theme and the fonts opened by
// Init. Init must have run.
func DefaultStyle() Style {
	theme := internal.GetTheme()

	return Style{
		Background:    theme.BackgroundColor,
		Heading:       NewFontStyle(internal.Fonts.HeadingFont, theme.HeadingColor),
		Item:          NewFontStyle(internal.Fonts.ItemFont, theme.TextColor),
		IndicatorFill: theme.IndicatorFillColor,
		Highlight:     theme.HighlightColor,
		HighlightText: NewFontStyle(internal.Fonts.ItemFont, theme.HighlightedTextColor),
	}
}

// FontStyle is the production TextStyle: an opened SDL_ttf font plus the
// color it renders in.
type FontStyle struct {
	font  *ttf.Font
	color sdl.Color
}

func NewFontStyle(font *ttf.Font, color sdl.Color) *FontStyle {
	return &FontStyle{font: font, color: color}
}

func (s *FontStyle) Measure(text string) sdl.Rect {
	w, h, err := s.font.SizeUTF8(text)
	if err != nil {
		return sdl.Rect{}
	}
	return sdl.Rect{W: int32(w), H: int32(h)}
}

func (s *FontStyle) LineHeight() int32 {
	return int32(s.font.LineSkip())
}

func (s *FontStyle) Font() *ttf.Font {
	return s.font
}

func (s *FontStyle) Color() sdl.Color {
	return s.color
}
