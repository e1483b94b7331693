// pkg/scene/square.go
package scene

import "go-sketch/pkg/canvas"

// Square is an axis-aligned square centered at the shape's origin.
type Square struct {
	base
	size float64
}

func NewSquare(size float64) *Square {
	return &Square{base: newBase(), size: size}
}

// Size returns the side length.
func (s *Square) Size() float64 { return s.size }

// SetSize changes the side length.
func (s *Square) SetSize(size float64) *Square {
	s.size = size
	return s
}

func (s *Square) BuildPath(ctx canvas.Context) {
	half := s.size / 2
	ctx.Rect(-half, -half, s.size, s.size)
}
