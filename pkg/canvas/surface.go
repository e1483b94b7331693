// pkg/canvas/surface.go
package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"go-sketch/internal/event"
)

// Surface is the pixel buffer shapes are rendered into. Width and height are
// logical units; the backing image is allocated at the device pixel ratio
// scale. The image itself is created lazily so a Surface can be configured
// before the ebiten loop starts.
type Surface struct {
	id    string
	w, h  int
	scale float64

	img *ebiten.Image
	ctx *ImageContext

	background    color.RGBA
	hasBackground bool

	dispatcher *event.Dispatcher
}

// NewSurface creates a surface with the given logical size. A scale of 0 or
// less is treated as 1.
func NewSurface(id string, w, h int, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	return &Surface{id: id, w: w, h: h, scale: scale}
}

// ID returns the logical identifier the surface is registered under.
func (s *Surface) ID() string { return s.id }

// Size returns the logical width and height, independent of the device
// pixel ratio.
func (s *Surface) Size() (int, int) { return s.w, s.h }

// Scale returns the device pixel ratio the buffer is allocated at.
func (s *Surface) Scale() float64 { return s.scale }

// PixelSize returns the size of the backing buffer in device pixels.
func (s *Surface) PixelSize() (int, int) {
	return int(math.Ceil(float64(s.w) * s.scale)), int(math.Ceil(float64(s.h) * s.scale))
}

// SetDispatcher makes the surface announce resizes and background changes on d.
func (s *Surface) SetDispatcher(d *event.Dispatcher) { s.dispatcher = d }

// SetSize changes the logical size and re-derives the pixel buffer on next
// use. Setting the current size is a no-op.
func (s *Surface) SetSize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.img = nil
	s.ctx = nil
	s.dispatch(event.SurfaceResized)
}

// Image returns the backing buffer, allocating it on first use.
func (s *Surface) Image() *ebiten.Image {
	if s.img == nil {
		pw, ph := s.PixelSize()
		s.img = ebiten.NewImage(pw, ph)
	}
	return s.img
}

// Context returns the drawing context for the backing buffer.
func (s *Surface) Context() *ImageContext {
	if s.ctx == nil {
		s.ctx = NewImageContext(s.Image(), s.scale)
	}
	return s.ctx
}

// SetBackground sets the color every Clear repaints the surface with.
func (s *Surface) SetBackground(name string) error {
	c, err := ParseColor(name)
	if err != nil {
		return err
	}
	s.background = c
	s.hasBackground = true
	s.dispatch(event.BackgroundChanged)
	return nil
}

// ClearBackground reverts Clear to plain transparent clearing.
func (s *Surface) ClearBackground() {
	s.background = color.RGBA{}
	s.hasBackground = false
	s.dispatch(event.BackgroundChanged)
}

// Background reports the configured background color, if any.
func (s *Surface) Background() (color.RGBA, bool) {
	return s.background, s.hasBackground
}

// buffer is the part of ebiten.Image the clear path needs.
type buffer interface {
	Fill(clr color.Color)
	Clear()
}

// Clear wipes the buffer for the next frame: transparent by default, or a
// full repaint with the background color when one is set.
func (s *Surface) Clear() {
	s.clearInto(s.Image())
}

func (s *Surface) clearInto(b buffer) {
	if s.hasBackground {
		b.Fill(s.background)
		return
	}
	b.Clear()
}

func (s *Surface) dispatch(t event.Type) {
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: t, Data: s})
	}
}
