// pkg/scene/shape_test.go
package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sketch/pkg/canvas"
)

func TestFilledPrimitiveDefaults(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}

	for name, sh := range map[string]Shape{
		"circle":   NewCircle(10),
		"square":   NewSquare(20),
		"triangle": NewTriangle(0, 0, 10, 0, 5, 8),
	} {
		b := sh.Base()
		fill, hasFill := b.Fill()
		_, hasStroke := b.Stroke()

		assert.True(t, hasFill, "%s must default to a fill", name)
		assert.Equal(t, black, fill, name)
		assert.False(t, hasStroke, "%s must default to no stroke", name)
		assert.True(t, b.Visible(), name)
		assert.False(t, b.InScene(), name)

		x, y := b.Position()
		assert.Zero(t, x, name)
		assert.Zero(t, y, name)
		assert.Zero(t, b.Rotation(), name)
		assert.Equal(t, 1.0, b.LineWidth(), name)
	}
}

func TestLineDefaultsToStrokeOnly(t *testing.T) {
	l := NewLine(0, 0, 10, 10)

	_, hasFill := l.Fill()
	stroke, hasStroke := l.Stroke()

	assert.False(t, hasFill)
	require.True(t, hasStroke)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, stroke)
}

func TestSetRotationDegrees(t *testing.T) {
	c := NewCircle(1)
	c.SetRotationDegrees(180)
	assert.InDelta(t, math.Pi, c.Rotation(), 1e-9)

	c.SetRotationDegrees(90)
	assert.InDelta(t, math.Pi/2, c.Rotation(), 1e-9)
}

func TestFluentSettersChain(t *testing.T) {
	c := NewCircle(5)
	got := c.SetPosition(1, 2).
		SetRotationDegrees(45).
		SetFill("tomato").
		SetStroke("#00ff00").
		SetLineWidth(3).
		SetVisible(true)

	assert.Same(t, c.Base(), got)

	x, y := c.Position()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)

	fill, ok := c.Fill()
	require.True(t, ok)
	assert.Equal(t, color.RGBA{255, 99, 71, 255}, fill)

	stroke, ok := c.Stroke()
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, stroke)
	assert.Equal(t, 3.0, c.LineWidth())
}

func TestSetFillUnknownColorKeepsCurrent(t *testing.T) {
	c := NewCircle(5)
	c.SetFill("tomato")
	c.SetFill("no-such-color")

	fill, ok := c.Fill()
	require.True(t, ok)
	assert.Equal(t, color.RGBA{255, 99, 71, 255}, fill)
}

func TestInvisibleShapeDrawsNothing(t *testing.T) {
	c := NewCircle(10)
	c.SetVisible(false)

	rec := &ctxRecorder{}
	Draw(rec, c)

	assert.Empty(t, rec.ops)
}

func TestDrawAppliesRotationAfterTranslation(t *testing.T) {
	sq := NewSquare(10)
	sq.SetPosition(5, 6).SetRotation(1.5)

	rec := &ctxRecorder{}
	Draw(rec, sq)

	names := rec.names()
	require.Contains(t, names, "rotate")
	ti, ri := indexOf(names, "translate"), indexOf(names, "rotate")
	assert.Less(t, ti, ri, "rotation applies around the shape's own origin")

	rot, _ := rec.find("rotate")
	assert.Equal(t, []float64{1.5}, rot.args)
}

func TestDrawStrokeUsesLineWidth(t *testing.T) {
	l := NewLine(0, 0, 10, 0)
	l.SetLineWidth(4)

	rec := &ctxRecorder{}
	Draw(rec, l)

	assert.Equal(t, 0, rec.count("fill"))
	assert.Equal(t, 1, rec.count("stroke"))
	assert.Equal(t, 0, rec.count("closePath"), "a line is an open path")
	assert.Equal(t, 4.0, rec.lineWidth)
}

func TestOnAfterDrawRunsAfterStyling(t *testing.T) {
	c := NewCircle(3)
	c.SetStroke("white")

	order := []string{}
	c.OnAfterDraw = func(ctx canvas.Context) {
		order = append(order, "hook")
	}

	rec := &ctxRecorder{}
	Draw(rec, c)

	require.Equal(t, []string{"hook"}, order)
	// The hook runs before the final restore, with fill and stroke done.
	assert.Equal(t, 1, rec.count("fill"))
	assert.Equal(t, 1, rec.count("stroke"))
}

func TestSquarePathIsCenteredRect(t *testing.T) {
	sq := NewSquare(10)
	rec := &ctxRecorder{}
	Draw(rec, sq)

	rect, ok := rec.find("rect")
	require.True(t, ok)
	assert.Equal(t, []float64{-5, -5, 10, 10}, rect.args)
}

func TestTrianglePathIsClosed(t *testing.T) {
	tr := NewTriangle(0, -5, 5, 5, -5, 5)
	rec := &ctxRecorder{}
	Draw(rec, tr)

	assert.Equal(t, 1, rec.count("moveTo"))
	assert.Equal(t, 2, rec.count("lineTo"))
	assert.Equal(t, 1, rec.count("closePath"))
}

func indexOf(names []string, want string) int {
	for i, n := range names {
		if n == want {
			return i
		}
	}
	return -1
}
