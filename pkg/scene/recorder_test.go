// pkg/scene/recorder_test.go
package scene

import "image/color"

// ctxOp is one recorded drawing call.
type ctxOp struct {
	name string
	args []float64
}

// ctxRecorder is a canvas.Context that records every call, so tests can
// assert on the exact draw orchestration without a real surface.
type ctxRecorder struct {
	ops []ctxOp

	fillColor   color.RGBA
	strokeColor color.RGBA
	lineWidth   float64
}

func (r *ctxRecorder) record(name string, args ...float64) {
	r.ops = append(r.ops, ctxOp{name: name, args: args})
}

func (r *ctxRecorder) Save()                { r.record("save") }
func (r *ctxRecorder) Restore()             { r.record("restore") }
func (r *ctxRecorder) Translate(x, y float64) { r.record("translate", x, y) }
func (r *ctxRecorder) Rotate(angle float64) { r.record("rotate", angle) }
func (r *ctxRecorder) BeginPath()           { r.record("beginPath") }
func (r *ctxRecorder) MoveTo(x, y float64)  { r.record("moveTo", x, y) }
func (r *ctxRecorder) LineTo(x, y float64)  { r.record("lineTo", x, y) }
func (r *ctxRecorder) Arc(x, y, radius, start, end float64) {
	r.record("arc", x, y, radius, start, end)
}
func (r *ctxRecorder) Rect(x, y, w, h float64) { r.record("rect", x, y, w, h) }
func (r *ctxRecorder) ClosePath()              { r.record("closePath") }

func (r *ctxRecorder) SetFillColor(c color.RGBA)   { r.fillColor = c; r.record("setFillColor") }
func (r *ctxRecorder) SetStrokeColor(c color.RGBA) { r.strokeColor = c; r.record("setStrokeColor") }
func (r *ctxRecorder) SetLineWidth(w float64)      { r.lineWidth = w; r.record("setLineWidth", w) }

func (r *ctxRecorder) Fill()   { r.record("fill") }
func (r *ctxRecorder) Stroke() { r.record("stroke") }

func (r *ctxRecorder) names() []string {
	out := make([]string, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.name
	}
	return out
}

func (r *ctxRecorder) count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.name == name {
			n++
		}
	}
	return n
}

func (r *ctxRecorder) find(name string) (ctxOp, bool) {
	for _, op := range r.ops {
		if op.name == name {
			return op, true
		}
	}
	return ctxOp{}, false
}
