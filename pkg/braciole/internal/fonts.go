package internal

import (
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/ttf"
)

type FontSizes struct {
	Heading int `json:"heading" toml:"heading"`
	Item    int `json:"item" toml:"item"`
}

var DefaultFontSizes = FontSizes{
	Heading: 44,
	Item:    34,
}

var Fonts fontsManager

type fontsManager struct {
	HeadingFont *ttf.Font
	ItemFont    *ttf.Font
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Damp growth above the reference width so large screens don't blow up
	// row heights.
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return int(float32(baseSize) * scaleFactor)
}

func initFonts(sizes FontSizes) error {
	screenWidth := GetWindow().GetWidth()

	heading, err := loadFont(CalculateFontSizeForResolution(sizes.Heading, screenWidth))
	if err != nil {
		return err
	}

	item, err := loadFont(CalculateFontSizeForResolution(sizes.Item, screenWidth))
	if err != nil {
		return err
	}

	Fonts = fontsManager{
		HeadingFont: heading,
		ItemFont:    item,
	}

	return nil
}

// loadFont opens the theme font at the given size. FALLBACK_FONT takes
// priority when set, which keeps desktop runs working without the device
// font tree mounted.
func loadFont(size int) (*ttf.Font, error) {
	if fallback := os.Getenv(constants.FallbackFontEnvVar); fallback != "" {
		font, err := ttf.OpenFont(fallback, size)
		if err == nil {
			return font, nil
		}
		GetInternalLogger().Debug("Failed to load fallback font, using theme font", "fallback", fallback, "error", err)
	}

	font, err := ttf.OpenFont(GetTheme().FontPath, size)
	if err != nil {
		GetInternalLogger().Error("Failed to load theme font", "path", GetTheme().FontPath, "size", size, "error", err)
		return nil, err
	}

	return font, nil
}

func closeFonts() {
	if Fonts.HeadingFont != nil {
		Fonts.HeadingFont.Close()
	}
	if Fonts.ItemFont != nil {
		Fonts.ItemFont.Close()
	}
}
