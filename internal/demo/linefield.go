// internal/demo/linefield.go
package demo

import (
	"image/color"
	"log"
	"math"
	"sync/atomic"
	"time"

	"go-sketch/internal/app"
	"go-sketch/internal/config"
	"go-sketch/internal/state"
	"go-sketch/pkg/canvas"
	"go-sketch/pkg/scene"
	"go-sketch/pkg/timer"
)

// LineFieldState shows stroke-only shapes: a fan of rotating lines around
// the surface center, with a repeating timer flipping the background color.
// The timer fires off the frame loop, so it only raises an atomic flag that
// the next tick consumes.
type LineFieldState struct {
	m   *state.Machine
	app *app.App

	lines    []scene.Shape
	cx, cy   float64
	elapsed  float64
	alt      bool
	flip     atomic.Bool
	flipTick *timer.Handle
}

func NewLineFieldState(m *state.Machine, a *app.App) *LineFieldState {
	return &LineFieldState{m: m, app: a}
}

func (s *LineFieldState) Enter() {
	if err := s.app.SetBackground(config.DemoBackground); err != nil {
		log.Printf("demo: background: %v", err)
	}

	w, h := s.app.Surface().Size()
	s.cx, s.cy = float64(w)/2, float64(h)/2

	for i := 0; i < config.DemoLineCount; i++ {
		line := scene.NewLine(0, -30, 0, -170)
		line.SetPosition(s.cx, s.cy).
			SetRotation(2 * math.Pi * float64(i) / config.DemoLineCount).
			SetStroke("#8fd3ff").
			SetLineWidth(2)
		speed := s.app.Rng().FloatRange(0.4, 1.4)
		line.OnUpdate = func(dt float64) {
			line.SetRotation(line.Rotation() + speed*dt)
		}
		s.lines = append(s.lines, line)
		s.app.Scene().Add(line)
	}

	s.flipTick = timer.Repeat(config.DemoBackgroundFlipMs*time.Millisecond, func() {
		s.flip.Store(true)
	})
	s.elapsed = 0
	s.alt = false
}

func (s *LineFieldState) Update(dt float64) {
	if s.flip.CompareAndSwap(true, false) {
		s.alt = !s.alt
		name := config.DemoBackground
		if s.alt {
			name = config.DemoBackgroundAlt
		}
		if err := s.app.SetBackground(name); err != nil {
			log.Printf("demo: background: %v", err)
		}
	}

	s.elapsed += dt
	if s.elapsed >= config.DemoSceneSwitchSecs {
		s.m.SetState(NewOrbitState(s.m, s.app))
	}
}

// Draw paints a crosshair at the fan's hub, straight through the context.
func (s *LineFieldState) Draw(ctx canvas.Context) {
	ctx.Save()
	ctx.BeginPath()
	ctx.MoveTo(s.cx-8, s.cy)
	ctx.LineTo(s.cx+8, s.cy)
	ctx.MoveTo(s.cx, s.cy-8)
	ctx.LineTo(s.cx, s.cy+8)
	ctx.SetStrokeColor(color.RGBA{255, 255, 255, 255})
	ctx.SetLineWidth(1)
	ctx.Stroke()
	ctx.Restore()
}

func (s *LineFieldState) Exit() {
	s.flipTick.Stop()
	for _, line := range s.lines {
		s.app.Scene().Remove(line)
	}
	s.lines = nil
}
