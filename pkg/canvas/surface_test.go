// pkg/canvas/surface_test.go
package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sketch/internal/event"
)

// fakeBuffer records whether a clear was plain or a background repaint.
type fakeBuffer struct {
	filled  []color.Color
	cleared int
}

func (f *fakeBuffer) Fill(clr color.Color) { f.filled = append(f.filled, clr) }
func (f *fakeBuffer) Clear()               { f.cleared++ }

func TestSurfaceLogicalAndPixelSize(t *testing.T) {
	s := NewSurface("main", 100, 50, 1.5)

	w, h := s.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)

	pw, ph := s.PixelSize()
	assert.Equal(t, 150, pw)
	assert.Equal(t, 75, ph)

	assert.Equal(t, 1.5, s.Scale())
	assert.Equal(t, "main", s.ID())
}

func TestSurfaceZeroScaleDefaultsToOne(t *testing.T) {
	s := NewSurface("main", 100, 50, 0)
	pw, ph := s.PixelSize()
	assert.Equal(t, 100, pw)
	assert.Equal(t, 50, ph)
}

func TestSurfaceSetSize(t *testing.T) {
	s := NewSurface("main", 100, 50, 2)
	d := event.NewDispatcher()
	s.SetDispatcher(d)

	resizes := 0
	d.Subscribe(event.SurfaceResized, event.ListenerFunc(func(e event.Event) { resizes++ }))

	s.SetSize(200, 100)
	w, h := s.Size()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
	pw, ph := s.PixelSize()
	assert.Equal(t, 400, pw)
	assert.Equal(t, 200, ph)
	assert.Equal(t, 1, resizes)

	// Same size again is a no-op and must not fire.
	s.SetSize(200, 100)
	assert.Equal(t, 1, resizes)
}

func TestClearUsesBackgroundWhenSet(t *testing.T) {
	s := NewSurface("main", 10, 10, 1)

	buf := &fakeBuffer{}
	s.clearInto(buf)
	assert.Equal(t, 1, buf.cleared)
	assert.Empty(t, buf.filled)

	require.NoError(t, s.SetBackground("tomato"))
	s.clearInto(buf)
	assert.Equal(t, 1, buf.cleared, "background clear must repaint, not wipe")
	require.Len(t, buf.filled, 1)
	assert.Equal(t, color.RGBA{255, 99, 71, 255}, buf.filled[0])

	bg, ok := s.Background()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{255, 99, 71, 255}, bg)

	// Clearing the background restores plain clears.
	s.ClearBackground()
	s.clearInto(buf)
	assert.Equal(t, 2, buf.cleared)
	assert.Len(t, buf.filled, 1)
	_, ok = s.Background()
	assert.False(t, ok)
}

func TestSetBackgroundRejectsUnknownColor(t *testing.T) {
	s := NewSurface("main", 10, 10, 1)
	err := s.SetBackground("no-such-color")
	assert.Error(t, err)
	_, ok := s.Background()
	assert.False(t, ok)
}

func TestBackgroundChangeEvents(t *testing.T) {
	s := NewSurface("main", 10, 10, 1)
	d := event.NewDispatcher()
	s.SetDispatcher(d)

	changes := 0
	d.Subscribe(event.BackgroundChanged, event.ListenerFunc(func(e event.Event) {
		changes++
		assert.Same(t, s, e.Data)
	}))

	require.NoError(t, s.SetBackground("black"))
	s.ClearBackground()
	assert.Equal(t, 2, changes)
}
