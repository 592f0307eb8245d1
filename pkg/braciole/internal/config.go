package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// ThemeFile is the on-disk TOML shape of a theme. Colors are hex strings
// ("0xRRGGBB" or "RRGGBB").
type ThemeFile struct {
	Background      string    `toml:"background"`
	Text            string    `toml:"text"`
	Heading         string    `toml:"heading"`
	IndicatorFill   string    `toml:"indicator_fill"`
	Highlight       string    `toml:"highlight"`
	HighlightedText string    `toml:"highlighted_text"`
	FontPath        string    `toml:"font_path"`
	BackgroundImage string    `toml:"background_image"`
	FontSizes       FontSizes `toml:"font_sizes"`
}

// LoadThemeFile reads a TOML theme. Missing colors fall back to the
// currently active theme so partial overrides work.
func LoadThemeFile(path string) (Theme, error) {
	theme := GetTheme()

	var file ThemeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return theme, fmt.Errorf("decode theme %s: %w", path, err)
	}

	assignColor(&theme.BackgroundColor, file.Background)
	assignColor(&theme.TextColor, file.Text)
	assignColor(&theme.HeadingColor, file.Heading)
	assignColor(&theme.IndicatorFillColor, file.IndicatorFill)
	assignColor(&theme.HighlightColor, file.Highlight)
	assignColor(&theme.HighlightedTextColor, file.HighlightedText)

	if file.FontPath != "" {
		theme.FontPath = file.FontPath
	}
	if file.BackgroundImage != "" {
		theme.BackgroundImagePath = file.BackgroundImage
	}
	if file.FontSizes.Heading > 0 {
		DefaultFontSizes.Heading = file.FontSizes.Heading
	}
	if file.FontSizes.Item > 0 {
		DefaultFontSizes.Item = file.FontSizes.Item
	}

	return theme, nil
}

func assignColor(dst *sdl.Color, raw string) {
	if raw == "" {
		return
	}

	hex, err := strconv.ParseUint(strings.TrimPrefix(raw, "0x"), 16, 32)
	if err != nil {
		GetInternalLogger().Warn("Invalid theme color, keeping current", "value", raw, "error", err)
		return
	}

	*dst = HexToColor(uint32(hex))
}
