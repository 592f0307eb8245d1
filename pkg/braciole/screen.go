package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// ShowOptions configures the interactive menu screen.
type ShowOptions struct {
	InputDelay        time.Duration
	DisableBackButton bool

	// OnSelect fires after the A button activates the highlighted entry
	// (checkboxes toggle and selectors advance before the callback runs).
	OnSelect func(menu *Menu)
}

func DefaultShowOptions() ShowOptions {
	return ShowOptions{InputDelay: constants.DefaultInputDelay}
}

type screenController struct {
	menu          *Menu
	options       ShowOptions
	lastInputTime time.Time

	heldDirections struct {
		up, down bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

func newScreenController(menu *Menu, options ShowOptions) *screenController {
	if options.InputDelay <= 0 {
		options.InputDelay = constants.DefaultInputDelay
	}

	return &screenController{
		menu:           menu,
		options:        options,
		lastInputTime:  time.Now(),
		lastRepeatTime: time.Now(),
		repeatDelay:    150 * time.Millisecond,
		repeatInterval: 50 * time.Millisecond,
	}
}

// Show runs the menu as a blocking screen: it polls input, drives the
// menu's navigation, draws a frame per tick, and returns when the user
// selects out or cancels. Init must have run. Returns ErrCancelled when the
// user backs out, or the first surface error.
func Show(menu *Menu, options ShowOptions) error {
	window := internal.GetWindow()
	renderer := window.Renderer
	background := frameBackground(window)

	sc := newScreenController(menu, options)

	running := true
	cancelled := false

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
				sc.handleInput(event, &running, &cancelled)
			}
		}

		sc.handleDirectionalRepeats()

		surface, err := NewRendererSurface(renderer)
		if err != nil {
			return err
		}
		surface.background = background

		if err := menu.Draw(surface); err != nil {
			return err
		}

		renderer.Present()
		sdl.Delay(16)
	}

	if cancelled {
		return ErrCancelled
	}

	return nil
}

func (sc *screenController) handleInput(event sdl.Event, running, cancelled *bool) {
	processor := internal.GetInputProcessor()

	inputEvent := processor.ProcessSDLEvent(event)
	for inputEvent != nil {
		sc.handleEvent(inputEvent, running, cancelled)
		inputEvent = processor.NextQueuedEvent()
	}
}

func (sc *screenController) handleEvent(inputEvent *internal.Event, running, cancelled *bool) {
	if !inputEvent.Pressed {
		switch inputEvent.Button {
		case constants.VirtualButtonUp:
			sc.heldDirections.up = false
			sc.hasRepeated = false
		case constants.VirtualButtonDown:
			sc.heldDirections.down = false
			sc.hasRepeated = false
		}
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonUp:
		sc.heldDirections.up = true
		sc.heldDirections.down = false
		sc.navigate(constants.VirtualButtonUp)
		sc.lastRepeatTime = time.Now()

	case constants.VirtualButtonDown:
		sc.heldDirections.down = true
		sc.heldDirections.up = false
		sc.navigate(constants.VirtualButtonDown)
		sc.lastRepeatTime = time.Now()

	case constants.VirtualButtonA:
		sc.activate()

	case constants.VirtualButtonB:
		if !sc.options.DisableBackButton {
			*running = false
			*cancelled = true
		}
	}
}

func (sc *screenController) navigate(direction constants.VirtualButton) {
	if time.Since(sc.lastInputTime) < sc.options.InputDelay {
		return
	}
	sc.lastInputTime = time.Now()

	switch direction {
	case constants.VirtualButtonUp:
		sc.menu.NavigateUp()
	case constants.VirtualButtonDown:
		sc.menu.NavigateDown()
	}
}

// activate applies the host-loop default for the A button: checkboxes
// toggle, selectors advance. The menu's own SelectItem hook stays a no-op.
func (sc *screenController) activate() {
	if entry := sc.menu.HighlightedEntry(); entry != nil {
		switch entry.Kind {
		case EntryCheckbox:
			entry.Toggle()
		case EntrySelector:
			entry.AdvanceSelection()
		}
	}

	sc.menu.SelectItem()

	if sc.options.OnSelect != nil {
		sc.options.OnSelect(sc.menu)
	}
}

// frameBackground returns the texture Show composites behind every frame, or
// nil when the window does not display one.
func frameBackground(window *internal.Window) *sdl.Texture {
	if window == nil || !window.DisplayBackground {
		return nil
	}
	return window.Background
}

func (sc *screenController) handleDirectionalRepeats() {
	if !sc.heldDirections.up && !sc.heldDirections.down {
		sc.lastRepeatTime = time.Now()
		sc.hasRepeated = false
		return
	}

	threshold := sc.repeatInterval
	if !sc.hasRepeated {
		threshold = sc.repeatDelay
	}

	if time.Since(sc.lastRepeatTime) >= threshold {
		sc.lastRepeatTime = time.Now()
		sc.hasRepeated = true

		if sc.heldDirections.up {
			sc.navigate(constants.VirtualButtonUp)
		} else if sc.heldDirections.down {
			sc.navigate(constants.VirtualButtonDown)
		}
	}
}
