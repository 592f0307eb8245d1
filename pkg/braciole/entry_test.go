package braciole

import (
	"testing"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestEntrySizeUsesItemStyle(t *testing.T) {
	style := testStyle()
	e := NewEntry("abcd", EntrySection, &style)

	size := e.Size()
	if size.W != 4*8 || size.H != 20 {
		t.Fatalf("Size() = %dx%d, want 32x20", size.W, size.H)
	}
}

func TestAdvanceSelectionWraps(t *testing.T) {
	style := testStyle()
	e := NewSelectorEntry("lang", &style, []string{"en", "es", "pt"})

	want := []string{"es", "pt", "en", "es"}
	for i, expected := range want {
		e.AdvanceSelection()
		if got := e.SelectedOption(); got != expected {
			t.Fatalf("step %d: SelectedOption() = %q, want %q", i, got, expected)
		}
	}
}

func TestAdvanceSelectionIgnoresOtherKinds(t *testing.T) {
	style := testStyle()
	e := NewEntry("box", EntryCheckbox, &style)

	e.AdvanceSelection()
	if e.Selected != 0 {
		t.Fatalf("Selected = %d, want 0", e.Selected)
	}
}

func TestToggleOnlyAffectsCheckbox(t *testing.T) {
	style := testStyle()

	box := NewEntry("box", EntryCheckbox, &style)
	box.Toggle()
	if !box.Checked {
		t.Fatal("checkbox did not toggle on")
	}
	box.Toggle()
	if box.Checked {
		t.Fatal("checkbox did not toggle off")
	}

	section := NewEntry("sec", EntrySection, &style)
	section.Toggle()
	if section.Checked {
		t.Fatal("section must not toggle")
	}
}

func TestTranslateOffsetsLabel(t *testing.T) {
	style := testStyle()
	e := NewEntry("item", EntrySection, &style)
	e.Translate(sdl.Point{X: 6, Y: 3})

	surf := newRecordSurface(200, 20)
	if err := e.draw(surf); err != nil {
		t.Fatalf("draw: %v", err)
	}

	label := surf.log.findText("item")
	if label == nil {
		t.Fatal("label missing")
	}
	if label.anchor.X != 6 || label.anchor.Y != 3 {
		t.Fatalf("label anchored at %+v, want (6,3)", label.anchor)
	}
}

func TestCheckboxGlyphRightAlignedRegardlessOfWidth(t *testing.T) {
	style := testStyle()

	for _, width := range []int32{120, 320, 777} {
		for _, label := range []string{"s", "a much longer label"} {
			e := NewEntry(label, EntryCheckbox, &style)

			surf := newRecordSurface(width, 20)
			if err := e.draw(surf); err != nil {
				t.Fatalf("draw: %v", err)
			}

			glyph := surf.log.findText("[ ]")
			if glyph == nil {
				t.Fatalf("width %d label %q: no state glyph drawn", width, label)
			}
			if glyph.align != constants.TextAlignRight {
				t.Fatalf("width %d: glyph align = %v, want right", width, glyph.align)
			}
			if glyph.anchor.X != width {
				t.Fatalf("width %d: glyph anchored at %d, want %d", width, glyph.anchor.X, width)
			}
			if glyph.baseline != constants.BaselineTop {
				t.Fatalf("width %d: glyph baseline = %v, want top", width, glyph.baseline)
			}
		}
	}
}

func TestCheckedGlyph(t *testing.T) {
	style := testStyle()
	e := NewEntry("box", EntryCheckbox, &style)
	e.Toggle()

	surf := newRecordSurface(200, 20)
	if err := e.draw(surf); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if surf.log.findText("[x]") == nil {
		t.Fatal("checked box must draw [x]")
	}
}

func TestSelectorDrawsCurrentOption(t *testing.T) {
	style := testStyle()
	e := NewSelectorEntry("lang", &style, []string{"en", "es"})
	e.AdvanceSelection()

	surf := newRecordSurface(200, 20)
	if err := e.draw(surf); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if surf.log.findText("lang") == nil {
		t.Fatal("selector label missing")
	}

	option := surf.log.findText("es")
	if option == nil {
		t.Fatal("current option missing")
	}
	if option.align != constants.TextAlignRight || option.anchor.X != 200 {
		t.Fatalf("option anchored at %d align %v, want right edge", option.anchor.X, option.align)
	}
}

func TestSubmenuIndicatorGeometry(t *testing.T) {
	style := testStyle()

	// Item style height is 20, so the indicator square is 10 wide and the
	// triangle is padded 2 px on top, bottom and right. Row width must not
	// matter.
	for _, width := range []int32{100, 333} {
		e := NewEntry("sub", EntrySubmenu, &style)

		surf := newRecordSurface(width, 20)
		if err := e.draw(surf); err != nil {
			t.Fatalf("draw: %v", err)
		}

		triangles := surf.log.triangleOps()
		if len(triangles) != 1 {
			t.Fatalf("width %d: %d triangles, want 1", width, len(triangles))
		}

		tri := triangles[0]
		left := width - 10

		if tri.points[0].X != left || tri.points[0].Y != 2 {
			t.Fatalf("width %d: p1 = %+v, want (%d,2)", width, tri.points[0], left)
		}
		if tri.points[1].X != left || tri.points[1].Y != 18 {
			t.Fatalf("width %d: p2 = %+v, want (%d,18)", width, tri.points[1], left)
		}
		if tri.points[2].X != width-2 || tri.points[2].Y != 10 {
			t.Fatalf("width %d: apex = %+v, want (%d,10)", width, tri.points[2], width-2)
		}

		if tri.color != style.IndicatorFill {
			t.Fatalf("triangle color = %+v, want indicator fill", tri.color)
		}

		// Label is confined to the area left of the indicator.
		label := surf.log.findText("sub")
		if label == nil {
			t.Fatal("submenu label missing")
		}
		if label.region.W != width-10 {
			t.Fatalf("label region width = %d, want %d", label.region.W, width-10)
		}
	}
}
