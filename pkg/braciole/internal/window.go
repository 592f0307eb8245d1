package internal

import (
	"os"
	"strconv"
	"sync"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	PowerButtonWG     sync.WaitGroup
	PowerButtonConfig PowerButtonConfig
}

var window *Window

// Init brings up SDL, the window, fonts and input. Must run before any
// drawing happens.
func Init(title string, displayBackground bool, pbc PowerButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		panic(err)
	}

	if err := ttf.Init(); err != nil {
		panic(err)
	}

	window = initWindow(title, displayBackground)
	window.PowerButtonConfig = pbc

	if err := initFonts(DefaultFontSizes); err != nil {
		os.Exit(1)
	}

	InitInputProcessor()

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		window.initPowerButtonHandling(pbc)
	}
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}

	closeFonts()
	CloseInput()
	CloseLogger()
	ttf.Quit()
	sdl.Quit()
}

func initWindow(title string, displayBackground bool) *Window {
	displayIndex := 0
	displayMode, err := sdl.GetCurrentDisplayMode(displayIndex)

	if err != nil {
		GetInternalLogger().Error("Failed to get display mode!", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool) *Window {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		x, y = int32(50), int32(50)
		width = envDimension("WINDOW_WIDTH", 1024)
		height = envDimension("WINDOW_HEIGHT", 768)
	}

	var windowFlags uint32
	windowFlags = sdl.WINDOW_SHOWN

	if constants.IsDevMode() {
		windowFlags = windowFlags | sdl.WINDOW_BORDERLESS
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Error("Failed to create renderer!", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)

	win := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
	}

	win.loadBackground()

	return win
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetInternalLogger().Warn("Invalid window dimension; using default", "var", name, "value", v, "error", err)
		return fallback
	}

	return int32(n)
}

func (window *Window) initPowerButtonHandling(pbc PowerButtonConfig) {
	window.PowerButtonWG.Add(1)

	go PowerButtonHandler(&window.PowerButtonWG, pbc)
}

func (window *Window) loadBackground() {
	img.Init(img.INIT_PNG)

	theme := GetTheme()

	bgTexture, err := img.LoadTexture(window.Renderer, theme.BackgroundImagePath)
	if err == nil {
		window.Background = bgTexture
	} else {
		window.Background = nil
	}
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()

	img.Quit()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

// ResetBackground reloads the background texture from the active theme, for
// hosts that swap themes after Init.
func ResetBackground() {
	window.loadBackground()
}
