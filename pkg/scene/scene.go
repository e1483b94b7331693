// pkg/scene/scene.go
package scene

import (
	"go-sketch/internal/event"
	"go-sketch/pkg/canvas"
)

// Scene is the ordered registry of shapes drawn each frame. Membership is by
// identity and never duplicated: Add and Remove are idempotent and total.
type Scene struct {
	shapes     []Shape
	dispatcher *event.Dispatcher
}

func NewScene() *Scene {
	return &Scene{}
}

// SetDispatcher makes the scene announce membership changes on d.
func (s *Scene) SetDispatcher(d *event.Dispatcher) { s.dispatcher = d }

// Add appends sh to the end of the registry. Nil shapes and shapes that are
// already members are ignored. The shape is drawn starting next frame.
func (s *Scene) Add(sh Shape) {
	if sh == nil || sh.Base().inScene {
		return
	}
	sh.Base().inScene = true
	s.shapes = append(s.shapes, sh)
	s.dispatch(event.ShapeAdded, sh)
}

// Remove takes sh out of the registry. Shapes that are not members are
// ignored. The shape stops being drawn starting next frame.
func (s *Scene) Remove(sh Shape) {
	if sh == nil || !sh.Base().inScene {
		return
	}
	for i, member := range s.shapes {
		if member == sh {
			s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
			break
		}
	}
	sh.Base().inScene = false
	s.dispatch(event.ShapeRemoved, sh)
}

// Len returns the number of shapes in the registry.
func (s *Scene) Len() int { return len(s.shapes) }

// Shapes returns the registry contents in draw order.
func (s *Scene) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Update runs every shape's OnUpdate hook in registry order. The iteration
// reads the live sequence, so a hook that adds or removes shapes affects
// which later shapes are visited within the same tick.
func (s *Scene) Update(dt float64) {
	for i := 0; i < len(s.shapes); i++ {
		if fn := s.shapes[i].Base().OnUpdate; fn != nil {
			fn(dt)
		}
	}
}

// Draw renders every shape in registry order.
func (s *Scene) Draw(ctx canvas.Context) {
	for i := 0; i < len(s.shapes); i++ {
		Draw(ctx, s.shapes[i])
	}
}

func (s *Scene) dispatch(t event.Type, sh Shape) {
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: t, Data: sh})
	}
}
