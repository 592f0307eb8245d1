package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes the device power key. The key never reaches
// SDL on the supported handhelds, so it is read straight from evdev.
type PowerButtonConfig struct {
	ButtonCode      int
	DevicePath      string
	ShortPressMax   time.Duration
	CoolDownTime    time.Duration
	SuspendScript   string
	ShutdownCommand string
}

var powerHandlerRunning atomic.Bool

// PowerButtonHandler blocks on the configured evdev device and turns power
// key presses into suspend (short press) or shutdown (long press). Runs on
// its own goroutine for the lifetime of the window.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	defer wg.Done()

	if !powerHandlerRunning.CompareAndSwap(false, true) {
		return
	}
	defer powerHandlerRunning.Store(false)

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}
	defer device.Close()

	var pressedAt time.Time
	var lastAction time.Time

	for {
		event, err := device.ReadOne()
		if err != nil {
			GetInternalLogger().Error("Power button read failed", "error", err)
			return
		}

		if event.Type != evdev.EV_KEY || int(event.Code) != pbc.ButtonCode {
			continue
		}

		switch event.Value {
		case 1: // pressed
			pressedAt = time.Now()
		case 0: // released
			if pressedAt.IsZero() || time.Since(lastAction) < pbc.CoolDownTime {
				continue
			}

			held := time.Since(pressedAt)
			lastAction = time.Now()

			if held <= pbc.ShortPressMax {
				GetInternalLogger().Info("Power button short press, suspending", "held", held)
				runPowerCommand(pbc.SuspendScript)
			} else {
				GetInternalLogger().Info("Power button long press, shutting down", "held", held)
				runPowerCommand(pbc.ShutdownCommand)
			}
		}
	}
}

func runPowerCommand(command string) {
	if command == "" {
		return
	}

	if err := exec.Command(command).Run(); err != nil {
		GetInternalLogger().Error("Power command failed", "command", command, "error", err)
	}
}
