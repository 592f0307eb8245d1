package internal

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

var globalInputProcessor *Processor
var gameControllers []*sdl.GameController
var rawJoysticks []*sdl.Joystick

func InitInputProcessor() {
	globalInputProcessor = NewInputProcessor()

	numJoysticks := sdl.NumJoysticks()
	GetInternalLogger().Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			controller := sdl.GameControllerOpen(i)
			if controller == nil {
				GetInternalLogger().Error("Failed to open game controller", "index", i)
				continue
			}

			// This joystick index is serviced through the game controller
			// API; raw joystick events from it must be ignored.
			globalInputProcessor.gameControllerJoystickIndices[i] = true
			gameControllers = append(gameControllers, controller)

			GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
		} else {
			joystick := sdl.JoystickOpen(i)
			if joystick == nil {
				GetInternalLogger().Debug("Failed to open raw joystick", "index", i)
				continue
			}

			rawJoysticks = append(rawJoysticks, joystick)
			GetInternalLogger().Debug("Opened raw joystick", "index", i, "name", joystick.Name())
		}
	}
}

func GetInputProcessor() *Processor {
	return globalInputProcessor
}

// Processor folds raw SDL input events into virtual button transitions.
// Axis and hat positions are stateful: a transition is only reported when
// the tracked direction changes.
type Processor struct {
	mapping                       *InputMapping
	gameControllerJoystickIndices map[int]bool
	axisStates                    map[uint8]int8 // -1 negative, 0 centered, 1 positive
	hatStates                     map[uint8]uint8
	eventQueue                    []*Event
}

func NewInputProcessor() *Processor {
	return &Processor{
		mapping:                       GetInputMapping(),
		gameControllerJoystickIndices: make(map[int]bool),
		axisStates:                    make(map[uint8]int8),
		hatStates:                     make(map[uint8]uint8),
	}
}

// ProcessSDLEvent translates one SDL event into a virtual button event, or
// nil when the event maps to nothing. When a single SDL event produces more
// than one transition (a hat flick), the extras are queued; drain them with
// NextQueuedEvent.
func (ip *Processor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat > 0 {
			return nil
		}
		button, ok := ip.mapping.KeyboardMap[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Source: SourceKeyboard, RawCode: int(e.Keysym.Sym)}

	case *sdl.ControllerButtonEvent:
		button, ok := ip.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Source: SourceController, RawCode: int(e.Button)}

	case *sdl.JoyButtonEvent:
		if ip.gameControllerJoystickIndices[int(e.Which)] {
			return nil
		}
		button, ok := ip.mapping.JoystickButtonMap[e.Button]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Source: SourceJoystick, RawCode: int(e.Button)}

	case *sdl.JoyAxisEvent:
		if ip.gameControllerJoystickIndices[int(e.Which)] {
			return nil
		}
		return ip.processAxis(e)

	case *sdl.JoyHatEvent:
		if ip.gameControllerJoystickIndices[int(e.Which)] {
			return nil
		}
		return ip.processHat(e)
	}

	return nil
}

// NextQueuedEvent pops a transition left over from a previous call.
func (ip *Processor) NextQueuedEvent() *Event {
	if len(ip.eventQueue) == 0 {
		return nil
	}
	event := ip.eventQueue[0]
	ip.eventQueue = ip.eventQueue[1:]
	return event
}

func (ip *Processor) processAxis(e *sdl.JoyAxisEvent) *Event {
	mapping, ok := ip.mapping.JoystickAxisMap[e.Axis]
	if !ok {
		return nil
	}

	var state int8
	switch {
	case e.Value > mapping.Threshold:
		state = 1
	case e.Value < -mapping.Threshold:
		state = -1
	}

	previous := ip.axisStates[e.Axis]
	if state == previous {
		return nil
	}
	ip.axisStates[e.Axis] = state

	if previous != 0 {
		ip.eventQueue = append(ip.eventQueue, &Event{
			Button:  axisButton(mapping, previous),
			Pressed: false,
			Source:  SourceJoystickAxis,
			RawCode: int(e.Axis),
		})
	}

	if state == 0 {
		return ip.NextQueuedEvent()
	}

	ip.eventQueue = append(ip.eventQueue, &Event{
		Button:  axisButton(mapping, state),
		Pressed: true,
		Source:  SourceJoystickAxis,
		RawCode: int(e.Axis),
	})

	return ip.NextQueuedEvent()
}

func axisButton(mapping JoystickAxisMapping, direction int8) constants.VirtualButton {
	if direction > 0 {
		return mapping.PositiveButton
	}
	return mapping.NegativeButton
}

func (ip *Processor) processHat(e *sdl.JoyHatEvent) *Event {
	previous := ip.hatStates[e.Hat]
	if e.Value == previous {
		return nil
	}
	ip.hatStates[e.Hat] = e.Value

	if button, ok := ip.mapping.HatMap[previous]; ok {
		ip.eventQueue = append(ip.eventQueue, &Event{Button: button, Pressed: false, Source: SourceHatSwitch, RawCode: int(e.Hat)})
	}
	if button, ok := ip.mapping.HatMap[e.Value]; ok {
		ip.eventQueue = append(ip.eventQueue, &Event{Button: button, Pressed: true, Source: SourceHatSwitch, RawCode: int(e.Hat)})
	}

	return ip.NextQueuedEvent()
}

func CloseInput() {
	for _, controller := range gameControllers {
		controller.Close()
	}
	gameControllers = nil

	for _, joystick := range rawJoysticks {
		joystick.Close()
	}
	rawJoysticks = nil
}
