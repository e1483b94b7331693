// cmd/sketch/main.go
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-sketch/internal/app"
	"go-sketch/internal/config"
	"go-sketch/internal/demo"
	"go-sketch/internal/event"
	"go-sketch/internal/state"
	"go-sketch/pkg/canvas"
)

func main() {
	reg := canvas.NewRegistry()
	scale := ebiten.Monitor().DeviceScaleFactor()
	reg.Add(canvas.NewSurface("main", config.ScreenWidth, config.ScreenHeight, scale))

	a, err := app.NewByID(reg, "main", app.Options{
		Title:      config.WindowTitle,
		AutoResize: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	a.Dispatcher().Subscribe(event.ShapeAdded, event.ListenerFunc(func(e event.Event) {
		log.Printf("scene: shape added (%d total)", a.Scene().Len())
	}))
	a.Dispatcher().Subscribe(event.SurfaceResized, event.ListenerFunc(func(e event.Event) {
		w, h := a.Surface().Size()
		log.Printf("surface: resized to %dx%d", w, h)
	}))

	machine := state.NewMachine()
	machine.SetState(demo.NewOrbitState(machine, a))
	a.OnTick = machine.Update
	a.OnDraw = machine.Draw

	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
