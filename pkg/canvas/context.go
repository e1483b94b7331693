// pkg/canvas/context.go
package canvas

import "image/color"

// Context is the immediate-mode 2D drawing contract shapes render through.
// The ebiten-backed implementation is ImageContext; tests substitute a
// recording fake.
type Context interface {
	// Save pushes the current transform and style state.
	Save()
	// Restore pops the most recently saved state.
	Restore()

	// Translate moves the origin by (x, y) in the current coordinate space.
	Translate(x, y float64)
	// Rotate rotates the coordinate space by angle radians around the origin.
	Rotate(angle float64)

	// BeginPath discards any geometry accumulated so far.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc appends a circular arc centered at (x, y). Angles are in radians;
	// the arc runs clockwise from start to end.
	Arc(x, y, radius, start, end float64)
	// Rect appends a closed axis-aligned rectangle subpath.
	Rect(x, y, w, h float64)
	ClosePath()

	SetFillColor(c color.RGBA)
	SetStrokeColor(c color.RGBA)
	SetLineWidth(w float64)

	// Fill paints the interior of the current path with the fill color.
	Fill()
	// Stroke outlines the current path with the stroke color and line width.
	Stroke()
}
