// pkg/scene/line.go
package scene

import "go-sketch/pkg/canvas"

// Line is an open segment between two local-space endpoints. Unlike the
// other primitives it defaults to stroke-only: a filled zero-area path would
// never be visible.
type Line struct {
	base
	x1, y1 float64
	x2, y2 float64
}

func NewLine(x1, y1, x2, y2 float64) *Line {
	l := &Line{
		base: newBase(),
		x1:   x1, y1: y1,
		x2: x2, y2: y2,
	}
	l.SetNoFill()
	stroke := defaultStroke()
	l.stroke = &stroke
	return l
}

// Endpoints returns the two local-space endpoints.
func (l *Line) Endpoints() (x1, y1, x2, y2 float64) {
	return l.x1, l.y1, l.x2, l.y2
}

// SetEndpoints replaces the two endpoints.
func (l *Line) SetEndpoints(x1, y1, x2, y2 float64) *Line {
	l.x1, l.y1 = x1, y1
	l.x2, l.y2 = x2, y2
	return l
}

func (l *Line) BuildPath(ctx canvas.Context) {
	ctx.MoveTo(l.x1, l.y1)
	ctx.LineTo(l.x2, l.y2)
}
