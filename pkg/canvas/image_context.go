// pkg/canvas/image_context.go
package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ctxState is one entry of the Save/Restore stack. The transform is kept
// both as a GeoM and as the accumulated rotation/scale components, because
// arcs need the raw angle and radius scale, not just the matrix.
type ctxState struct {
	geom      ebiten.GeoM
	angle     float64
	scale     float64
	fill      color.RGBA
	stroke    color.RGBA
	lineWidth float64
}

// ImageContext renders Context calls into an ebiten.Image. Paths are
// tessellated with ebiten's vector package and drawn as triangles against a
// 1x1 white source image.
//
// Only rigid transforms plus the uniform device-pixel-ratio scale are
// supported, which is all the shape layer ever asks for.
type ImageContext struct {
	target *ebiten.Image
	cur    ctxState
	stack  []ctxState
	path   vector.Path

	white *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewImageContext wraps target. All coordinates passed to the context are
// logical; scale maps them to target pixels (use 1 for a 1:1 buffer).
func NewImageContext(target *ebiten.Image, scale float64) *ImageContext {
	c := &ImageContext{target: target}
	c.cur.scale = scale
	c.cur.geom.Scale(scale, scale)
	c.cur.fill = color.RGBA{0, 0, 0, 255}
	c.cur.stroke = color.RGBA{0, 0, 0, 255}
	c.cur.lineWidth = 1
	return c
}

func (c *ImageContext) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *ImageContext) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *ImageContext) Translate(x, y float64) {
	g := ebiten.GeoM{}
	g.Translate(x, y)
	g.Concat(c.cur.geom)
	c.cur.geom = g
}

func (c *ImageContext) Rotate(angle float64) {
	g := ebiten.GeoM{}
	g.Rotate(angle)
	g.Concat(c.cur.geom)
	c.cur.geom = g
	c.cur.angle += angle
}

func (c *ImageContext) BeginPath() {
	c.path = vector.Path{}
}

func (c *ImageContext) MoveTo(x, y float64) {
	px, py := c.cur.geom.Apply(x, y)
	c.path.MoveTo(float32(px), float32(py))
}

func (c *ImageContext) LineTo(x, y float64) {
	px, py := c.cur.geom.Apply(x, y)
	c.path.LineTo(float32(px), float32(py))
}

func (c *ImageContext) Arc(x, y, radius, start, end float64) {
	px, py := c.cur.geom.Apply(x, y)
	r := radius * c.cur.scale
	c.path.Arc(float32(px), float32(py), float32(r),
		float32(start+c.cur.angle), float32(end+c.cur.angle), vector.Clockwise)
}

func (c *ImageContext) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *ImageContext) ClosePath() {
	c.path.Close()
}

func (c *ImageContext) SetFillColor(clr color.RGBA)   { c.cur.fill = clr }
func (c *ImageContext) SetStrokeColor(clr color.RGBA) { c.cur.stroke = clr }
func (c *ImageContext) SetLineWidth(w float64)        { c.cur.lineWidth = w }

func (c *ImageContext) Fill() {
	c.vs, c.is = c.path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawVertices(c.cur.fill)
}

func (c *ImageContext) Stroke() {
	c.vs, c.is = c.path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width: float32(c.cur.lineWidth * c.cur.scale),
	})
	c.drawVertices(c.cur.stroke)
}

func (c *ImageContext) drawVertices(clr color.RGBA) {
	if len(c.is) == 0 {
		return
	}
	for i := range c.vs {
		c.vs[i].SrcX = 0.5
		c.vs[i].SrcY = 0.5
		c.vs[i].ColorR = float32(clr.R) / 255
		c.vs[i].ColorG = float32(clr.G) / 255
		c.vs[i].ColorB = float32(clr.B) / 255
		c.vs[i].ColorA = float32(clr.A) / 255
	}
	c.target.DrawTriangles(c.vs, c.is, c.whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// whiteImage is allocated on first use so that a context can be constructed
// before the ebiten game loop is up.
func (c *ImageContext) whiteImage() *ebiten.Image {
	if c.white == nil {
		c.white = ebiten.NewImage(1, 1)
		c.white.Fill(color.White)
	}
	return c.white
}

var _ Context = (*ImageContext)(nil)
