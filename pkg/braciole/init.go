package braciole

import (
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/platform/cannoli"
	"github.com/BrandonKowalski/braciole/pkg/braciole/platform/nextui"
)

type Options struct {
	WindowTitle          string
	ShowBackground       bool
	PrimaryThemeColorHex uint32

	// IsNextUI selects the NextUI theme pipeline; everything else gets the
	// Cannoli preset.
	IsNextUI bool

	// ThemeFile points at a TOML theme overriding the platform preset.
	ThemeFile string

	LogFilename string
}

// Init initializes SDL, the theme, fonts and input.
// Must be called before any other UI functions!
func Init(options Options) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if os.Getenv("BRACIOLE_DEBUG") != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	pbc := internal.PowerButtonConfig{}

	if options.IsNextUI {
		internal.SetTheme(nextui.InitNextUITheme())
		pbc = internal.PowerButtonConfig{
			ButtonCode:      116,
			DevicePath:      "/dev/input/event1",
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
			ShutdownCommand: "/sbin/poweroff",
		}
	} else {
		internal.SetTheme(cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf"))
	}

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme := internal.GetTheme()
		theme.IndicatorFillColor = internal.HexToColor(options.PrimaryThemeColorHex)
		theme.HighlightColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	if options.ThemeFile != "" {
		theme, err := internal.LoadThemeFile(options.ThemeFile)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme file", "path", options.ThemeFile, "error", err)
		} else {
			internal.SetTheme(theme)
		}
	}

	internal.Init(options.WindowTitle, options.ShowBackground, pbc)
}

// Close tidies up SDL and the UI.
// Must be called after all UI functions!
func Close() {
	internal.SDLCleanup()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}

func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// ResetBackground reloads the theme's background image. Call it after
// changing themes at runtime.
func ResetBackground() {
	internal.ResetBackground()
}

func HideWindow() {
	internal.GetWindow().Window.Hide()
}

func ShowWindow() {
	internal.GetWindow().Window.Show()
}
