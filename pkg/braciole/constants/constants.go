package constants

import (
	"os"
	"time"
)

const (
	DevModeEnvVar        = "DEV_MODE"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	FallbackFontEnvVar   = "FALLBACK_FONT"
)

const DefaultInputDelay = 20 * time.Millisecond

// IsDevMode reports whether the library runs on a desktop instead of a
// handheld. Dev mode opens a small window and reads paths from env vars.
func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) != ""
}

// TextAlign controls horizontal placement of text relative to its origin.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Baseline controls vertical placement of text relative to its origin.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineBottom
)

// VirtualButton is the device-independent button namespace every physical
// input (keyboard, controller, joystick, hat) is mapped into.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)
