// pkg/scene/shape.go
package scene

import (
	"image/color"

	"go-sketch/internal/config"
	"go-sketch/internal/utils"
	"go-sketch/pkg/canvas"
)

// Shape is anything a scene can draw. Concrete shapes embed Base and emit
// their geometry in local space; translation and rotation are applied by the
// draw orchestration.
type Shape interface {
	// Base exposes the shared transform and style state.
	Base() *Base
	// BuildPath appends the shape's outline to the context's current path,
	// in local (untranslated, unrotated) coordinates.
	BuildPath(ctx canvas.Context)
}

// Base carries the state shared by every shape: position, rotation, fill and
// stroke styling, visibility, and scene membership. All mutators are fluent
// so shapes can be configured in a chain.
type Base struct {
	x, y     float64
	rotation float64

	fill      *color.RGBA
	stroke    *color.RGBA
	lineWidth float64

	visible bool
	inScene bool

	// OnUpdate, when set, runs once per tick with the elapsed seconds
	// before the shape is drawn.
	OnUpdate func(dt float64)
	// OnAfterDraw, when set, runs after fill and stroke with the transform
	// still applied. Hook for decorations beyond plain fill/stroke.
	OnAfterDraw func(ctx canvas.Context)
}

// newBase returns the shared defaults: origin position, no rotation, solid
// black fill, no stroke, visible.
func newBase() Base {
	fill := config.DefaultFill
	return Base{
		fill:      &fill,
		lineWidth: config.DefaultLineWidth,
		visible:   true,
	}
}

func defaultStroke() color.RGBA { return config.DefaultStroke }

// base is embedded by the concrete shapes under an unexported name so the
// field does not shadow the promoted Base() method.
type base = Base

func (b *Base) Base() *Base { return b }

// Position returns the shape's position.
func (b *Base) Position() (float64, float64) { return b.x, b.y }

// Rotation returns the shape's rotation in radians.
func (b *Base) Rotation() float64 { return b.rotation }

// Visible reports whether the shape is drawn.
func (b *Base) Visible() bool { return b.visible }

// InScene reports whether the shape is currently a scene member.
func (b *Base) InScene() bool { return b.inScene }

// Fill returns the fill color, if one is set.
func (b *Base) Fill() (color.RGBA, bool) {
	if b.fill == nil {
		return color.RGBA{}, false
	}
	return *b.fill, true
}

// Stroke returns the stroke color, if one is set.
func (b *Base) Stroke() (color.RGBA, bool) {
	if b.stroke == nil {
		return color.RGBA{}, false
	}
	return *b.stroke, true
}

// LineWidth returns the stroke width.
func (b *Base) LineWidth() float64 { return b.lineWidth }

// SetPosition moves the shape to (x, y).
func (b *Base) SetPosition(x, y float64) *Base {
	b.x, b.y = x, y
	return b
}

// SetRotation sets the rotation in radians.
func (b *Base) SetRotation(rad float64) *Base {
	b.rotation = rad
	return b
}

// SetRotationDegrees sets the rotation in degrees.
func (b *Base) SetRotationDegrees(deg float64) *Base {
	b.rotation = utils.DegToRad(deg)
	return b
}

// SetFill sets the fill color from a color string. Unknown colors leave the
// current fill untouched.
func (b *Base) SetFill(name string) *Base {
	if c, err := canvas.ParseColor(name); err == nil {
		b.fill = &c
	}
	return b
}

// SetNoFill removes the fill so only the stroke (if any) is drawn.
func (b *Base) SetNoFill() *Base {
	b.fill = nil
	return b
}

// SetStroke sets the stroke color from a color string. Unknown colors leave
// the current stroke untouched.
func (b *Base) SetStroke(name string) *Base {
	if c, err := canvas.ParseColor(name); err == nil {
		b.stroke = &c
	}
	return b
}

// SetNoStroke removes the stroke.
func (b *Base) SetNoStroke() *Base {
	b.stroke = nil
	return b
}

// SetLineWidth sets the stroke width in logical pixels.
func (b *Base) SetLineWidth(w float64) *Base {
	b.lineWidth = w
	return b
}

// SetVisible toggles whether the shape is drawn at all.
func (b *Base) SetVisible(v bool) *Base {
	b.visible = v
	return b
}

// Draw renders s through ctx: transform, path, fill, stroke, post-draw hook.
// Invisible shapes are skipped entirely.
func Draw(ctx canvas.Context, s Shape) {
	b := s.Base()
	if !b.visible {
		return
	}
	ctx.Save()
	ctx.Translate(b.x, b.y)
	if b.rotation != 0 {
		ctx.Rotate(b.rotation)
	}
	ctx.BeginPath()
	s.BuildPath(ctx)
	if b.fill != nil {
		ctx.SetFillColor(*b.fill)
		ctx.Fill()
	}
	if b.stroke != nil {
		ctx.SetStrokeColor(*b.stroke)
		ctx.SetLineWidth(b.lineWidth)
		ctx.Stroke()
	}
	if b.OnAfterDraw != nil {
		b.OnAfterDraw(ctx)
	}
	ctx.Restore()
}
