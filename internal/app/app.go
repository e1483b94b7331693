// internal/app/app.go
package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-sketch/internal/config"
	"go-sketch/internal/event"
	"go-sketch/internal/utils"
	"go-sketch/pkg/canvas"
	"go-sketch/pkg/scene"
)

// Options configures a new App.
type Options struct {
	// Width and Height override the surface's logical size when both are
	// positive.
	Width, Height int
	// Title is the window title. Empty uses config.WindowTitle.
	Title string
	// AutoResize re-derives the surface size whenever the host window is
	// resized.
	AutoResize bool
	// Seed initializes the app's random generator. 0 seeds from the clock.
	Seed int64
}

// App is the frame driver: it owns the surface and the scene and implements
// ebiten.Game, so every display refresh becomes one tick. It starts idle and
// switches to running on Run; there is no stop or pause.
//
// Nothing in the tick path recovers panics. A panicking shape hook halts the
// loop for good.
type App struct {
	surface    *canvas.Surface
	scene      *scene.Scene
	dispatcher *event.Dispatcher
	rng        *utils.PRNG
	opts       Options

	// OnTick, when set, runs once per tick with the clamped dt before the
	// scene's update pass.
	OnTick func(dt float64)
	// OnDraw, when set, runs after the scene's draw pass with the surface
	// context, for overlays drawn outside the shape model.
	OnDraw func(ctx canvas.Context)

	now     func() time.Time
	last    time.Time
	started bool
}

// New builds an app around an existing surface.
func New(surface *canvas.Surface, opts Options) *App {
	a := &App{
		surface:    surface,
		scene:      scene.NewScene(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNG(opts.Seed),
		opts:       opts,
		now:        time.Now,
	}
	surface.SetDispatcher(a.dispatcher)
	a.scene.SetDispatcher(a.dispatcher)
	if opts.Width > 0 && opts.Height > 0 {
		surface.SetSize(opts.Width, opts.Height)
	}
	return a
}

// NewByID builds an app around the surface registered under id. It fails
// with canvas.ErrNotFound, leaving no state behind, when the id is unknown.
func NewByID(reg *canvas.Registry, id string, opts Options) (*App, error) {
	surface, err := reg.Lookup(id)
	if err != nil {
		return nil, err
	}
	return New(surface, opts), nil
}

// Scene returns the app's shape registry.
func (a *App) Scene() *scene.Scene { return a.scene }

// Surface returns the drawing surface.
func (a *App) Surface() *canvas.Surface { return a.surface }

// Dispatcher returns the app-wide event bus.
func (a *App) Dispatcher() *event.Dispatcher { return a.dispatcher }

// Rng returns the app's seeded random generator.
func (a *App) Rng() *utils.PRNG { return a.rng }

// SetBackground sets the surface background color for every clear.
func (a *App) SetBackground(name string) error {
	return a.surface.SetBackground(name)
}

// ClearBackground reverts to transparent clearing.
func (a *App) ClearBackground() {
	a.surface.ClearBackground()
}

// Update is one simulation tick: compute the clamped elapsed time, run the
// tick hook, then every shape's update hook in registry order.
func (a *App) Update() error {
	now := a.now()
	if !a.started {
		a.last = now
		a.started = true
	}
	dt := now.Sub(a.last).Seconds()
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}
	a.last = now

	if a.OnTick != nil {
		a.OnTick(dt)
	}
	a.scene.Update(dt)
	return nil
}

// Draw clears the surface (repainting with the background color when one is
// set), renders the scene, and blits the buffer to the screen.
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Clear()
	ctx := a.surface.Context()
	a.scene.Draw(ctx)
	if a.OnDraw != nil {
		a.OnDraw(ctx)
	}
	screen.DrawImage(a.surface.Image(), nil)
}

// Layout reports the render resolution in device pixels. With AutoResize the
// surface follows the host window's logical size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.opts.AutoResize && outsideWidth > 0 && outsideHeight > 0 {
		a.surface.SetSize(outsideWidth, outsideHeight)
	}
	return a.surface.PixelSize()
}

// Run opens the window and hands control to ebiten's frame loop. It blocks
// for the life of the process.
func (a *App) Run() error {
	w, h := a.surface.Size()
	ebiten.SetWindowSize(w, h)
	title := a.opts.Title
	if title == "" {
		title = config.WindowTitle
	}
	ebiten.SetWindowTitle(title)
	if a.opts.AutoResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(a)
}
