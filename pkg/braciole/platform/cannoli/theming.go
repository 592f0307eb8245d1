package cannoli

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor:      internal.HexToColor(0xFFFFFF),
		TextColor:            internal.HexToColor(0x000000),
		HeadingColor:         internal.HexToColor(0x000000),
		IndicatorFillColor:   internal.HexToColor(0x008080),
		HighlightColor:       internal.HexToColor(0x008080),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		FontPath:             fontPath,
	}
}
