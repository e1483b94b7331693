// internal/demo/orbit.go
package demo

import (
	"log"
	"math"

	"go-sketch/internal/app"
	"go-sketch/internal/config"
	"go-sketch/internal/state"
	"go-sketch/pkg/canvas"
	"go-sketch/pkg/scene"
)

// OrbitState shows the three filled primitives animating: a circle orbiting
// the center, a spinning square, and a bobbing triangle.
type OrbitState struct {
	m       *state.Machine
	app     *app.App
	shapes  []scene.Shape
	elapsed float64
}

func NewOrbitState(m *state.Machine, a *app.App) *OrbitState {
	return &OrbitState{m: m, app: a}
}

func (s *OrbitState) Enter() {
	if err := s.app.SetBackground(config.DemoBackground); err != nil {
		log.Printf("demo: background: %v", err)
	}

	w, h := s.app.Surface().Size()
	cx, cy := float64(w)/2, float64(h)/2

	circle := scene.NewCircle(26)
	circle.SetFill("tomato").SetStroke("white").SetLineWidth(2)
	angle := s.app.Rng().FloatRange(0, 2*math.Pi)
	circle.OnUpdate = func(dt float64) {
		angle += config.DemoOrbitSpeed * dt
		circle.SetPosition(
			cx+config.DemoOrbitRadius*math.Cos(angle),
			cy+config.DemoOrbitRadius*math.Sin(angle),
		)
	}

	square := scene.NewSquare(70)
	square.SetPosition(cx, cy).SetFill("steelblue")
	square.OnUpdate = func(dt float64) {
		square.SetRotation(square.Rotation() + config.DemoSpinSpeed*dt)
	}

	tri := scene.NewTriangle(0, -36, 32, 24, -32, 24)
	tri.SetPosition(cx, cy-150).SetFill("gold")
	bob := 0.0
	tri.OnUpdate = func(dt float64) {
		bob += dt
		tri.SetPosition(cx, cy-150+12*math.Sin(2*bob))
	}

	s.shapes = []scene.Shape{circle, square, tri}
	for _, sh := range s.shapes {
		s.app.Scene().Add(sh)
	}
	s.elapsed = 0
}

func (s *OrbitState) Update(dt float64) {
	s.elapsed += dt
	if s.elapsed >= config.DemoSceneSwitchSecs {
		s.m.SetState(NewLineFieldState(s.m, s.app))
	}
}

func (s *OrbitState) Draw(ctx canvas.Context) {}

func (s *OrbitState) Exit() {
	for _, sh := range s.shapes {
		s.app.Scene().Remove(sh)
	}
	s.shapes = nil
}
