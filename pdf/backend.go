package pdf

import (
	"github.com/plotkit/plotkit/canvas"
	"github.com/plotkit/plotkit/fonts"
	"github.com/plotkit/plotkit/render"
)

func init() {
	render.Register("pdf", func() render.Backend { return NewBackend() })
}

// Backend is a render.Backend that emits content stream operators. Geometry
// arrives pre-mapped to page-space points, so drawing reduces to operator
// emission.
type Backend struct {
	cw *ContentWriter
}

// NewBackend returns a backend writing into a fresh content stream.
func NewBackend() *Backend {
	return &Backend{cw: NewContentWriter()}
}

// Content returns the accumulated content stream bytes.
func (b *Backend) Content() []byte { return b.cw.Bytes() }

// Writer exposes the underlying content writer, letting callers wrap backend
// output in their own graphics state.
func (b *Backend) Writer() *ContentWriter { return b.cw }

func (b *Backend) strokeSetup(s canvas.Stroke) {
	b.cw.SetLineWidth(s.Width)
	b.cw.SetStrokeColor(s.Color.R, s.Color.G, s.Color.B)
}

func (b *Backend) DrawLine(x0, y0, x1, y1 float64, stroke canvas.Stroke) {
	b.strokeSetup(stroke)
	b.cw.MoveTo(x0, y0)
	b.cw.LineTo(x1, y1)
	b.cw.Stroke()
}

func (b *Backend) DrawPolyline(pts []canvas.Point, stroke canvas.Stroke) {
	if len(pts) < 2 {
		return
	}
	b.strokeSetup(stroke)
	b.polyPath(pts)
	b.cw.Stroke()
}

// paintSetup emits the color and width state for paint and returns the path
// painting step: S for stroke only, f for fill only, B for fill then stroke.
// A paint with neither aspect paints nothing.
func (b *Backend) paintSetup(paint render.Paint) func() {
	if paint.Fill != nil {
		b.cw.SetFillColor(paint.Fill.R, paint.Fill.G, paint.Fill.B)
	}
	if paint.Stroke != nil {
		b.strokeSetup(*paint.Stroke)
	}
	switch {
	case paint.Fill != nil && paint.Stroke != nil:
		return b.cw.FillStroke
	case paint.Fill != nil:
		return b.cw.Fill
	case paint.Stroke != nil:
		return b.cw.Stroke
	}
	return nil
}

func (b *Backend) DrawPolygon(pts []canvas.Point, paint render.Paint) {
	if len(pts) < 3 {
		return
	}
	op := b.paintSetup(paint)
	if op == nil {
		return
	}
	b.polyPath(pts)
	b.cw.ClosePath()
	op()
}

func (b *Backend) DrawCircle(cx, cy, r float64, paint render.Paint) {
	if r <= 0 {
		return
	}
	op := b.paintSetup(paint)
	if op == nil {
		return
	}
	b.cw.Circle(cx, cy, r)
	op()
}

func (b *Backend) DrawText(x, y float64, s string, style canvas.TextStyle) {
	if s == "" || style.Size <= 0 {
		return
	}
	switch style.Anchor {
	case canvas.AnchorMiddle:
		x -= fonts.MeasureBuiltin(s, style.Size) / 2
	case canvas.AnchorEnd:
		x -= fonts.MeasureBuiltin(s, style.Size)
	}
	b.cw.SetFillColor(style.Color.R, style.Color.G, style.Color.B)
	b.cw.BeginText(style.Size)
	b.cw.TextPosition(x, y)
	b.cw.ShowText(s)
	b.cw.EndText()
}

func (b *Backend) polyPath(pts []canvas.Point) {
	b.cw.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		b.cw.LineTo(pt.X, pt.Y)
	}
}
