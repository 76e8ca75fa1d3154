package export

import (
	"github.com/plotkit/plotkit/canvas"
	"github.com/plotkit/plotkit/observability"
	"github.com/plotkit/plotkit/pdf"
	"github.com/plotkit/plotkit/render"
	"github.com/plotkit/plotkit/view"
)

// synthesize walks the buffer exactly once and emits content stream
// operators per primitive, in recorded order. It keeps its own transform
// stack with the same semantics as the renderer but does no batching: the
// single-buffer export path is a direct walk, and must map every point to
// the same page coordinates the renderer would.
func synthesize(buf *canvas.CommandBuffer, symbols *canvas.SymbolSnapshot, mapping view.RenderMapping, log observability.Logger) []byte {
	s := &synth{
		backend: pdf.NewBackend(),
		log:     log,
		symbols: symbols,
		mapping: mapping,
		current: canvas.Identity(),
	}
	s.walk(buf, canvas.Identity(), 0)
	return s.backend.Content()
}

type synth struct {
	backend *pdf.Backend
	log     observability.Logger
	symbols *canvas.SymbolSnapshot
	mapping view.RenderMapping

	stack   []canvas.Transform2D
	current canvas.Transform2D
}

func (s *synth) walk(buf *canvas.CommandBuffer, local canvas.Transform2D, depth int) {
	for _, rec := range buf.Records() {
		switch cmd := rec.Cmd.(type) {
		case canvas.Save:
			s.stack = append(s.stack, s.current)
		case canvas.Restore:
			if n := len(s.stack); n > 0 {
				s.current = s.stack[n-1]
				s.stack = s.stack[:n-1]
			} else {
				s.log.Warn("restore without matching save", observability.String("source", rec.Source))
			}
		case canvas.SetTransform:
			s.current = cmd.T
		case canvas.BeginSymbol, canvas.EndSymbol:
			// Markers only; definitions live in the snapshot.
		case canvas.SymbolInstance:
			def, ok := s.symbols.Lookup(cmd.ID)
			if !ok {
				s.log.Debug("symbol not resolved, skipping instance",
					observability.Int("symbol", cmd.ID), observability.String("source", rec.Source))
				continue
			}
			if depth >= render.DefaultMaxSymbolDepth {
				s.log.Warn("symbol recursion truncated",
					observability.Int("symbol", cmd.ID), observability.Int("depth", depth))
				continue
			}
			s.walk(def, local.Mul(cmd.T), depth+1)
		case canvas.Text:
			x, y := s.mapPoint(local, cmd.X, cmd.Y)
			style := cmd.Style
			style.Size *= s.scaleAt(local)
			s.backend.DrawText(x, y, cmd.S, style)
		default:
			s.emit(rec, local)
		}
	}
}

func (s *synth) scaleAt(local canvas.Transform2D) float64 {
	return local.ScaleFactor() * s.current.ScaleFactor() * s.mapping.Scale
}

func (s *synth) mapPoint(local canvas.Transform2D, x, y float64) (float64, float64) {
	wx, wy := local.Apply(x, y)
	cx, cy := s.current.Apply(wx, wy)
	return s.mapping.Map(cx, cy)
}

func (s *synth) mapPoints(local canvas.Transform2D, pts []canvas.Point) []canvas.Point {
	out := make([]canvas.Point, len(pts))
	for i, pt := range pts {
		x, y := s.mapPoint(local, pt.X, pt.Y)
		out[i] = canvas.Point{X: x, Y: y}
	}
	return out
}

func (s *synth) scaledStroke(st canvas.Stroke, local canvas.Transform2D) canvas.Stroke {
	st.Width *= s.scaleAt(local)
	return st
}

// emit draws one primitive immediately, stroke aspect then fill aspect.
func (s *synth) emit(rec canvas.Record, local canvas.Transform2D) {
	switch c := rec.Cmd.(type) {
	case canvas.Line:
		if rec.Meta.HasStroke {
			x0, y0 := s.mapPoint(local, c.X0, c.Y0)
			x1, y1 := s.mapPoint(local, c.X1, c.Y1)
			s.backend.DrawLine(x0, y0, x1, y1, s.scaledStroke(c.Stroke, local))
		}
	case canvas.Polyline:
		if rec.Meta.HasStroke {
			s.backend.DrawPolyline(s.mapPoints(local, c.Points), s.scaledStroke(c.Stroke, local))
		}
	case canvas.Polygon:
		s.emitPoly(rec.Meta, s.mapPoints(local, c.Points), c.Stroke, c.Fill, local)
	case canvas.Rect:
		pts := []canvas.Point{
			{X: c.X, Y: c.Y},
			{X: c.X + c.W, Y: c.Y},
			{X: c.X + c.W, Y: c.Y + c.H},
			{X: c.X, Y: c.Y + c.H},
		}
		s.emitPoly(rec.Meta, s.mapPoints(local, pts), c.Stroke, c.Fill, local)
	case canvas.Circle:
		cx, cy := s.mapPoint(local, c.CX, c.CY)
		s.backend.DrawCircle(cx, cy, c.R*s.scaleAt(local), s.paint(rec.Meta, c.Stroke, c.Fill, local))
	}
}

func (s *synth) emitPoly(meta canvas.Meta, pts []canvas.Point, stroke canvas.Stroke, fill *canvas.Color, local canvas.Transform2D) {
	s.backend.DrawPolygon(pts, s.paint(meta, stroke, fill, local))
}

// paint combines both aspects into one Paint so a filled and stroked shape
// becomes a single fill-then-stroke path rather than two passes.
func (s *synth) paint(meta canvas.Meta, stroke canvas.Stroke, fill *canvas.Color, local canvas.Transform2D) render.Paint {
	var p render.Paint
	if meta.HasStroke {
		st := s.scaledStroke(stroke, local)
		p.Stroke = &st
	}
	if meta.HasFill && fill != nil {
		p.Fill = fill
	}
	return p
}
