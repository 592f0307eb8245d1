package braciole

import (
	"errors"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// fakeStyle measures text with fixed per-character metrics so layout math
// is predictable in tests.
type fakeStyle struct {
	charW, charH, line int32
}

func (s fakeStyle) Measure(text string) sdl.Rect {
	return sdl.Rect{W: s.charW * int32(len(text)), H: s.charH}
}

func (s fakeStyle) LineHeight() int32 {
	return s.line
}

func testStyle() Style {
	return Style{
		Background:    sdl.Color{R: 10, G: 20, B: 30, A: 255},
		Heading:       fakeStyle{charW: 10, charH: 24, line: 30},
		Item:          fakeStyle{charW: 8, charH: 20, line: 22},
		IndicatorFill: sdl.Color{R: 200, G: 0, B: 0, A: 255},
		Highlight:     sdl.Color{R: 0, G: 200, B: 0, A: 255},
		HighlightText: fakeStyle{charW: 8, charH: 20, line: 22},
	}
}

type drawOp struct {
	kind     string // "clear", "text", "triangle"
	text     string
	anchor   sdl.Point // absolute anchor the op was issued at
	region   sdl.Rect  // absolute region of the surface the op ran against
	align    constants.TextAlign
	baseline constants.Baseline
	color    sdl.Color
	points   [3]sdl.Point // absolute, triangles only
}

type frameLog struct {
	ops []drawOp

	// failText makes DrawText fail when it sees this exact string.
	failText string
}

func (l *frameLog) textOps() []drawOp {
	var out []drawOp
	for _, op := range l.ops {
		if op.kind == "text" {
			out = append(out, op)
		}
	}
	return out
}

func (l *frameLog) findText(text string) *drawOp {
	for i := range l.ops {
		if l.ops[i].kind == "text" && l.ops[i].text == text {
			return &l.ops[i]
		}
	}
	return nil
}

func (l *frameLog) triangleOps() []drawOp {
	var out []drawOp
	for _, op := range l.ops {
		if op.kind == "triangle" {
			out = append(out, op)
		}
	}
	return out
}

// recordSurface is an in-memory Surface that records every operation with
// absolute coordinates. Cropped sub-surfaces share the parent's log.
type recordSurface struct {
	bounds sdl.Rect // absolute
	log    *frameLog
}

func newRecordSurface(w, h int32) *recordSurface {
	return &recordSurface{bounds: sdl.Rect{W: w, H: h}, log: &frameLog{}}
}

func (s *recordSurface) Bounds() sdl.Rect {
	return sdl.Rect{W: s.bounds.W, H: s.bounds.H}
}

func (s *recordSurface) Clear(c sdl.Color) error {
	s.log.ops = append(s.log.ops, drawOp{kind: "clear", region: s.bounds, color: c})
	return nil
}

func (s *recordSurface) FillTriangle(p1, p2, p3 sdl.Point, c sdl.Color) error {
	s.log.ops = append(s.log.ops, drawOp{
		kind:   "triangle",
		region: s.bounds,
		color:  c,
		points: [3]sdl.Point{
			{X: s.bounds.X + p1.X, Y: s.bounds.Y + p1.Y},
			{X: s.bounds.X + p2.X, Y: s.bounds.Y + p2.Y},
			{X: s.bounds.X + p3.X, Y: s.bounds.Y + p3.Y},
		},
	})
	return nil
}

func (s *recordSurface) DrawText(text string, origin sdl.Point, style TextStyle, align constants.TextAlign, baseline constants.Baseline) error {
	if s.log.failText != "" && text == s.log.failText {
		return errors.New("surface write fault")
	}

	s.log.ops = append(s.log.ops, drawOp{
		kind:     "text",
		text:     text,
		anchor:   sdl.Point{X: s.bounds.X + origin.X, Y: s.bounds.Y + origin.Y},
		region:   s.bounds,
		align:    align,
		baseline: baseline,
	})
	return nil
}

func (s *recordSurface) Cropped(region sdl.Rect) Surface {
	abs := sdl.Rect{
		X: s.bounds.X + region.X,
		Y: s.bounds.Y + region.Y,
		W: region.W,
		H: region.H,
	}

	if clipped, ok := abs.Intersect(&s.bounds); ok {
		abs = clipped
	} else {
		abs.W, abs.H = 0, 0
	}

	return &recordSurface{bounds: abs, log: s.log}
}
