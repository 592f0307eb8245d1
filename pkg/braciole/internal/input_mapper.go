package internal

import (
	"encoding/json"
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const MappingPathEnvVar = "INPUT_MAPPING_PATH"

var inputMappingBytes []byte

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
	SourceJoystickAxis
	SourceHatSwitch
)

// Event is one device-independent button transition.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

type JoystickAxisMapping struct {
	PositiveButton constants.VirtualButton
	NegativeButton constants.VirtualButton
	Threshold      int16
}

type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton
	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton
	JoystickButtonMap   map[uint8]constants.VirtualButton
	JoystickAxisMap     map[uint8]JoystickAxisMapping
	HatMap              map[uint8]constants.VirtualButton
}

func defaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_RETURN:    constants.VirtualButtonA,
			sdl.K_ESCAPE:    constants.VirtualButtonB,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
			sdl.K_SPACE:     constants.VirtualButtonSelect,
			sdl.K_s:         constants.VirtualButtonStart,
			sdl.K_m:         constants.VirtualButtonMenu,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
		},
		JoystickButtonMap: map[uint8]constants.VirtualButton{
			0: constants.VirtualButtonA,
			1: constants.VirtualButtonB,
			6: constants.VirtualButtonSelect,
			7: constants.VirtualButtonStart,
		},
		JoystickAxisMap: map[uint8]JoystickAxisMapping{
			0: {PositiveButton: constants.VirtualButtonRight, NegativeButton: constants.VirtualButtonLeft, Threshold: 16000},
			1: {PositiveButton: constants.VirtualButtonDown, NegativeButton: constants.VirtualButtonUp, Threshold: 16000},
		},
		HatMap: map[uint8]constants.VirtualButton{
			sdl.HAT_UP:    constants.VirtualButtonUp,
			sdl.HAT_DOWN:  constants.VirtualButtonDown,
			sdl.HAT_LEFT:  constants.VirtualButtonLeft,
			sdl.HAT_RIGHT: constants.VirtualButtonRight,
		},
	}
}

// GetInputMapping returns the default mapping, overridden by embedded bytes
// or a JSON file when the host ships a custom layout.
func GetInputMapping() *InputMapping {
	mapping := defaultInputMapping()

	data := inputMappingBytes
	if data == nil {
		path := os.Getenv(MappingPathEnvVar)
		if path == "" {
			return mapping
		}

		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			GetInternalLogger().Warn("Failed to read input mapping file", "path", path, "error", err)
			return mapping
		}
	}

	if err := json.Unmarshal(data, mapping); err != nil {
		GetInternalLogger().Warn("Failed to parse input mapping, using defaults", "error", err)
		return defaultInputMapping()
	}

	return mapping
}
