package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Surface is the drawing target for one menu frame. Implementations report
// a local coordinate space whose origin is the top-left of the surface, and
// any operation may fail with a surface-specific error. Draw aborts on the
// first such error, so a failed frame may be partially rendered.
type Surface interface {
	// Bounds returns the drawable area in local coordinates; X and Y are
	// always zero.
	Bounds() sdl.Rect

	// Clear fills the whole surface with a solid color.
	Clear(c sdl.Color) error

	// FillTriangle renders a solid triangle between three local points.
	FillTriangle(p1, p2, p3 sdl.Point, c sdl.Color) error

	// DrawText renders text anchored at origin with the given horizontal
	// alignment and vertical baseline.
	DrawText(text string, origin sdl.Point, style TextStyle, align constants.TextAlign, baseline constants.Baseline) error

	// Cropped returns a sub-surface restricted to region (local
	// coordinates). Drawing on the sub-surface cannot escape the region.
	Cropped(region sdl.Rect) Surface
}

// TextStyle provides the text metrics the layout pass needs. The production
// implementation is FontStyle; tests substitute fixed-metric fakes.
type TextStyle interface {
	// Measure returns the bounding box of text rendered with this style,
	// anchored at origin with a bottom baseline.
	Measure(text string) sdl.Rect

	// LineHeight reports the style's full line height in pixels.
	LineHeight() int32
}

// resizedHeightBottom shrinks r to height h while keeping its bottom edge
// in place.
func resizedHeightBottom(r sdl.Rect, h int32) sdl.Rect {
	h = internal.Max32(h, 0)
	return sdl.Rect{X: r.X, Y: r.Y + r.H - h, W: r.W, H: h}
}
