package braciole

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// RendererSurface adapts an SDL renderer to the Surface contract. Cropping
// is implemented by carrying an absolute sub-rectangle and clipping every
// operation to it, so sub-surfaces share the renderer without copying
// pixels.
type RendererSurface struct {
	renderer   *sdl.Renderer
	bounds     sdl.Rect // absolute renderer coordinates
	background *sdl.Texture
}

// NewRendererSurface wraps the renderer's full output area.
func NewRendererSurface(renderer *sdl.Renderer) (*RendererSurface, error) {
	w, h, err := renderer.GetOutputSize()
	if err != nil {
		return nil, fmt.Errorf("renderer output size: %w", err)
	}

	return &RendererSurface{renderer: renderer, bounds: sdl.Rect{W: w, H: h}}, nil
}

func (s *RendererSurface) Bounds() sdl.Rect {
	return sdl.Rect{W: s.bounds.W, H: s.bounds.H}
}

func (s *RendererSurface) Clear(c sdl.Color) error {
	if err := s.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}

	region := s.bounds
	if err := s.renderer.FillRect(&region); err != nil {
		return err
	}

	// The background composites over the fill so transparent regions of the
	// image keep the clear color.
	if s.background != nil {
		return s.renderer.Copy(s.background, nil, &region)
	}

	return nil
}

func (s *RendererSurface) FillTriangle(p1, p2, p3 sdl.Point, c sdl.Color) error {
	return s.withClip(func() error {
		ok := gfx.FilledTrigonColor(s.renderer,
			s.bounds.X+p1.X, s.bounds.Y+p1.Y,
			s.bounds.X+p2.X, s.bounds.Y+p2.Y,
			s.bounds.X+p3.X, s.bounds.Y+p3.Y,
			c)
		if !ok {
			if err := sdl.GetError(); err != nil {
				return fmt.Errorf("fill triangle: %w", err)
			}
			return errors.New("fill triangle failed")
		}
		return nil
	})
}

func (s *RendererSurface) DrawText(text string, origin sdl.Point, style TextStyle, align constants.TextAlign, baseline constants.Baseline) error {
	if text == "" {
		return nil
	}

	fs, ok := style.(*FontStyle)
	if !ok {
		return fmt.Errorf("renderer surface needs a FontStyle, got %T", style)
	}

	textSurface, err := fs.font.RenderUTF8Blended(text, fs.color)
	if err != nil {
		return fmt.Errorf("render text %q: %w", text, err)
	}
	defer textSurface.Free()

	texture, err := s.renderer.CreateTextureFromSurface(textSurface)
	if err != nil {
		return fmt.Errorf("text texture: %w", err)
	}
	defer texture.Destroy()

	x := s.bounds.X + origin.X
	switch align {
	case constants.TextAlignCenter:
		x -= textSurface.W / 2
	case constants.TextAlignRight:
		x -= textSurface.W
	}

	y := s.bounds.Y + origin.Y
	if baseline == constants.BaselineBottom {
		y -= textSurface.H
	}

	dst := sdl.Rect{X: x, Y: y, W: textSurface.W, H: textSurface.H}

	return s.withClip(func() error {
		return s.renderer.Copy(texture, nil, &dst)
	})
}

func (s *RendererSurface) Cropped(region sdl.Rect) Surface {
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

	// The background belongs to the full frame; sub-surfaces clear to the
	// flat color only.
	return &RendererSurface{renderer: s.renderer, bounds: abs}
}

func (s *RendererSurface) withClip(draw func() error) error {
	region := s.bounds
	if err := s.renderer.SetClipRect(&region); err != nil {
		return err
	}
	defer s.renderer.SetClipRect(nil)

	return draw()
}
