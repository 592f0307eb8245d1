package braciole

import (
	"testing"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

func TestFrameBackgroundRequiresDisplayFlag(t *testing.T) {
	if frameBackground(nil) != nil {
		t.Fatal("nil window must yield no background")
	}

	win := &internal.Window{}
	if frameBackground(win) != nil {
		t.Fatal("background must stay off unless the window displays one")
	}

	win.DisplayBackground = true
	if frameBackground(win) != nil {
		t.Fatal("display flag without a loaded texture must yield nil")
	}
}
