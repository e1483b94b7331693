// pkg/scene/circle.go
package scene

import (
	"math"

	"go-sketch/pkg/canvas"
)

// Circle is a full circle centered at the shape's origin.
type Circle struct {
	base
	radius float64
}

func NewCircle(radius float64) *Circle {
	return &Circle{base: newBase(), radius: radius}
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius changes the radius.
func (c *Circle) SetRadius(r float64) *Circle {
	c.radius = r
	return c
}

func (c *Circle) BuildPath(ctx canvas.Context) {
	ctx.Arc(0, 0, c.radius, 0, 2*math.Pi)
	ctx.ClosePath()
}
