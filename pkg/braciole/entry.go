package braciole

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// EntryKind is the closed set of renderable menu rows. Drawing dispatches on
// the kind with one case each, so a frame allocates nothing per entry.
type EntryKind int

const (
	EntrySection EntryKind = iota
	EntryCheckbox
	EntrySelector
	EntrySubmenu
)

func (k EntryKind) String() string {
	switch k {
	case EntrySection:
		return "Section"
	case EntryCheckbox:
		return "Checkbox"
	case EntrySelector:
		return "Selector"
	case EntrySubmenu:
		return "Submenu"
	default:
		return "Unknown"
	}
}

const (
	indicatorVerticalPad int32 = 2
	indicatorRightPad    int32 = 2
)

// Entry is one menu row. Position is rewritten by the layout pass; the rest
// is fixed at construction except the Checkbox/Selector state fields.
type Entry struct {
	Label       string
	Kind        EntryKind
	Highlighted bool
	Position    sdl.Point

	// Checkbox state.
	Checked bool

	// Selector state.
	Options  []string
	Selected int

	style *Style
}

func NewEntry(label string, kind EntryKind, style *Style) Entry {
	return Entry{Label: label, Kind: kind, style: style}
}

// NewSelectorEntry builds a Selector over a fixed option list. The first
// option starts selected.
func NewSelectorEntry(label string, style *Style, options []string) Entry {
	return Entry{Label: label, Kind: EntrySelector, Options: options, style: style}
}

func (e *Entry) String() string {
	return fmt.Sprintf("[%q:%v]", e.Label, e.Kind)
}

// Size reports the bounding box of the entry's label measured with the item
// text style, bottom baseline, origin zero. Used for row sizing only.
func (e *Entry) Size() sdl.Rect {
	return e.style.Item.Measure(e.Label)
}

// Translate shifts the entry's drawing position within its row. The layout
// pass leaves Position at the origin; the offset exists for hosts that nudge
// individual labels.
func (e *Entry) Translate(by sdl.Point) {
	e.Position.X += by.X
	e.Position.Y += by.Y
}

// Toggle flips a Checkbox between checked and unchecked. No-op for other
// kinds.
func (e *Entry) Toggle() {
	if e.Kind == EntryCheckbox {
		e.Checked = !e.Checked
	}
}

// AdvanceSelection cycles a Selector to its next option, wrapping past the
// end. No-op for other kinds.
func (e *Entry) AdvanceSelection() {
	if e.Kind != EntrySelector || len(e.Options) == 0 {
		return
	}
	e.Selected = (e.Selected + 1) % len(e.Options)
}

// SelectedOption returns the Selector's current option text.
func (e *Entry) SelectedOption() string {
	if len(e.Options) == 0 {
		return ""
	}
	return e.Options[e.Selected]
}

func (e *Entry) stateGlyph() string {
	if e.Checked {
		return "[x]"
	}
	return "[ ]"
}

// draw renders the entry into a region already cropped to its row.
func (e *Entry) draw(s Surface) error {
	switch e.Kind {
	case EntrySubmenu:
		return e.drawSubmenu(s)

	case EntryCheckbox:
		if err := s.DrawText(e.Label, e.Position, e.style.Item, constants.TextAlignLeft, constants.BaselineTop); err != nil {
			return err
		}
		// The glyph hugs the right edge of the full row, independent of
		// the label length.
		return s.DrawText(e.stateGlyph(), sdl.Point{X: s.Bounds().W}, e.style.Item, constants.TextAlignRight, constants.BaselineTop)

	case EntrySelector:
		if err := s.DrawText(e.Label, e.Position, e.style.Item, constants.TextAlignLeft, constants.BaselineTop); err != nil {
			return err
		}
		option := e.SelectedOption()
		if option == "" {
			return nil
		}
		return s.DrawText(option, sdl.Point{X: s.Bounds().W}, e.style.Item, constants.TextAlignRight, constants.BaselineTop)

	default:
		return s.DrawText(e.Label, e.Position, e.style.Item, constants.TextAlignLeft, constants.BaselineTop)
	}
}

// drawSubmenu splits the row into a label area and a right-hand indicator
// square whose width is half the entry height, then draws a solid
// right-pointing triangle padded 2 px from its top, bottom and right edges.
func (e *Entry) drawSubmenu(s Surface) error {
	bounds := s.Bounds()
	height := e.Size().H
	indicatorWidth := height / 2

	indicator := s.Cropped(sdl.Rect{X: bounds.W - indicatorWidth, Y: 0, W: indicatorWidth, H: height})
	apexY := (height-indicatorVerticalPad*2)/2 + indicatorVerticalPad

	err := indicator.FillTriangle(
		sdl.Point{X: 0, Y: indicatorVerticalPad},
		sdl.Point{X: 0, Y: height - indicatorVerticalPad},
		sdl.Point{X: indicatorWidth - indicatorRightPad, Y: apexY},
		e.style.IndicatorFill,
	)
	if err != nil {
		return err
	}

	label := s.Cropped(sdl.Rect{X: 0, Y: 0, W: bounds.W - indicatorWidth, H: height})
	return label.DrawText(e.Label, e.Position, e.style.Item, constants.TextAlignLeft, constants.BaselineTop)
}
