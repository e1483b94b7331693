// pkg/scene/triangle.go
package scene

import "go-sketch/pkg/canvas"

// Triangle is a closed triangle through three local-space points.
type Triangle struct {
	base
	x1, y1 float64
	x2, y2 float64
	x3, y3 float64
}

func NewTriangle(x1, y1, x2, y2, x3, y3 float64) *Triangle {
	return &Triangle{
		base: newBase(),
		x1:   x1, y1: y1,
		x2: x2, y2: y2,
		x3: x3, y3: y3,
	}
}

// Points returns the three local-space corner points.
func (t *Triangle) Points() (x1, y1, x2, y2, x3, y3 float64) {
	return t.x1, t.y1, t.x2, t.y2, t.x3, t.y3
}

// SetPoints replaces the three corner points.
func (t *Triangle) SetPoints(x1, y1, x2, y2, x3, y3 float64) *Triangle {
	t.x1, t.y1 = x1, y1
	t.x2, t.y2 = x2, y2
	t.x3, t.y3 = x3, y3
	return t
}

func (t *Triangle) BuildPath(ctx canvas.Context) {
	ctx.MoveTo(t.x1, t.y1)
	ctx.LineTo(t.x2, t.y2)
	ctx.LineTo(t.x3, t.y3)
	ctx.ClosePath()
}
