package render

import (
	"github.com/plotkit/plotkit/canvas"
	"github.com/plotkit/plotkit/observability"
	"github.com/plotkit/plotkit/view"
)

// DefaultMaxSymbolDepth bounds symbol instancing recursion. A definition that
// directly or transitively instances itself is truncated at this depth
// instead of overflowing the stack.
const DefaultMaxSymbolDepth = 64

// Renderer replays a command buffer against a backend. It is stateless
// between invocations; all mutable replay state is local to one Render call,
// so a single Renderer may be shared.
//
// Replay semantics:
//   - Save/Restore/SetTransform maintain the canvas transform stack.
//     SetTransform replaces the active transform outright. Restore on an
//     empty stack is a no-op, reported through Log.
//   - Save, Restore, SetTransform, Text, SymbolInstance and the symbol
//     definition markers are barriers: they flush the pending batch first.
//   - Other drawables batch by consecutive source tag. A flush draws every
//     stroke aspect in the batch, then every fill aspect, keeping one scene
//     entity's geometry visually contiguous with deterministic z-order.
//   - SymbolInstance composes the ambient local transform with the placement
//     transform and recurses into the symbol's local buffer. Unresolved ids
//     are skipped; the scene may simply not be fully loaded yet.
type Renderer struct {
	Log            observability.Logger
	MaxSymbolDepth int
}

// NewRenderer returns a Renderer with silent diagnostics and the default
// recursion limit.
func NewRenderer() *Renderer {
	return &Renderer{Log: observability.NopLogger{}, MaxSymbolDepth: DefaultMaxSymbolDepth}
}

// Render replays buf against backend through mapping. symbols may be nil
// when the buffer places no symbol instances.
func (r *Renderer) Render(buf *canvas.CommandBuffer, symbols *canvas.SymbolSnapshot, mapping view.RenderMapping, backend Backend) {
	if buf.Empty() {
		return
	}
	log := r.Log
	if log == nil {
		log = observability.NopLogger{}
	}
	maxDepth := r.MaxSymbolDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxSymbolDepth
	}
	p := &pass{
		log:      log,
		maxDepth: maxDepth,
		symbols:  symbols,
		mapping:  mapping,
		backend:  backend,
		current:  canvas.Identity(),
	}
	p.walk(buf, canvas.Identity(), 0)
}

// pass is the replay state of a single Render call.
type pass struct {
	log      observability.Logger
	maxDepth int
	symbols  *canvas.SymbolSnapshot
	mapping  view.RenderMapping
	backend  Backend

	stack   []canvas.Transform2D
	current canvas.Transform2D

	pending       []canvas.Record
	pendingSource string
}

func (p *pass) walk(buf *canvas.CommandBuffer, local canvas.Transform2D, depth int) {
	for _, rec := range buf.Records() {
		switch cmd := rec.Cmd.(type) {
		case canvas.Save:
			p.flush(local)
			p.stack = append(p.stack, p.current)
		case canvas.Restore:
			p.flush(local)
			if n := len(p.stack); n > 0 {
				p.current = p.stack[n-1]
				p.stack = p.stack[:n-1]
			} else {
				p.log.Warn("restore without matching save", observability.String("source", rec.Source))
			}
		case canvas.SetTransform:
			p.flush(local)
			p.current = cmd.T
		case canvas.Text:
			p.flush(local)
			p.drawText(cmd, rec.Source, local)
		case canvas.BeginSymbol, canvas.EndSymbol:
			// Definition markers; the definition content lives in the
			// snapshot, not the frame buffer.
			p.flush(local)
		case canvas.SymbolInstance:
			p.flush(local)
			p.instance(cmd, rec.Source, local, depth)
		default:
			if len(p.pending) > 0 && rec.Source != p.pendingSource {
				p.flush(local)
			}
			if len(p.pending) == 0 {
				p.pendingSource = rec.Source
			}
			p.pending = append(p.pending, rec)
		}
	}
	p.flush(local)
}

func (p *pass) instance(cmd canvas.SymbolInstance, source string, local canvas.Transform2D, depth int) {
	def, ok := p.symbols.Lookup(cmd.ID)
	if !ok {
		p.log.Debug("symbol not resolved, skipping instance",
			observability.Int("symbol", cmd.ID), observability.String("source", source))
		return
	}
	if depth >= p.maxDepth {
		p.log.Warn("symbol recursion truncated",
			observability.Int("symbol", cmd.ID), observability.Int("depth", depth))
		return
	}
	p.walk(def, local.Mul(cmd.T), depth+1)
}

// flush draws the pending batch: all stroke aspects first, then all fill
// aspects.
func (p *pass) flush(local canvas.Transform2D) {
	if len(p.pending) == 0 {
		return
	}
	if sa, ok := p.backend.(SourceAware); ok {
		sa.SetSource(p.pendingSource)
	}
	for _, rec := range p.pending {
		if rec.Meta.HasStroke {
			p.emitStroke(rec.Cmd, local)
		}
	}
	for _, rec := range p.pending {
		if rec.Meta.HasFill {
			p.emitFill(rec.Cmd, local)
		}
	}
	p.pending = p.pending[:0]
}

// scaleAt is the factor applied to stroke widths, radii and text sizes.
func (p *pass) scaleAt(local canvas.Transform2D) float64 {
	return local.ScaleFactor() * p.current.ScaleFactor() * p.mapping.Scale
}

// mapPoint takes a raw coordinate through the ambient local transform, the
// active canvas transform and the view mapping.
func (p *pass) mapPoint(local canvas.Transform2D, x, y float64) (float64, float64) {
	wx, wy := local.Apply(x, y)
	cx, cy := p.current.Apply(wx, wy)
	return p.mapping.Map(cx, cy)
}

func (p *pass) mapPoints(local canvas.Transform2D, pts []canvas.Point) []canvas.Point {
	out := make([]canvas.Point, len(pts))
	for i, pt := range pts {
		x, y := p.mapPoint(local, pt.X, pt.Y)
		out[i] = canvas.Point{X: x, Y: y}
	}
	return out
}

func (p *pass) scaledStroke(s canvas.Stroke, local canvas.Transform2D) canvas.Stroke {
	s.Width *= p.scaleAt(local)
	return s
}

func rectPoints(r canvas.Rect) []canvas.Point {
	return []canvas.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

func (p *pass) emitStroke(cmd canvas.Command, local canvas.Transform2D) {
	switch c := cmd.(type) {
	case canvas.Line:
		x0, y0 := p.mapPoint(local, c.X0, c.Y0)
		x1, y1 := p.mapPoint(local, c.X1, c.Y1)
		p.backend.DrawLine(x0, y0, x1, y1, p.scaledStroke(c.Stroke, local))
	case canvas.Polyline:
		p.backend.DrawPolyline(p.mapPoints(local, c.Points), p.scaledStroke(c.Stroke, local))
	case canvas.Polygon:
		s := p.scaledStroke(c.Stroke, local)
		p.backend.DrawPolygon(p.mapPoints(local, c.Points), Paint{Stroke: &s})
	case canvas.Rect:
		s := p.scaledStroke(c.Stroke, local)
		p.backend.DrawPolygon(p.mapPoints(local, rectPoints(c)), Paint{Stroke: &s})
	case canvas.Circle:
		cx, cy := p.mapPoint(local, c.CX, c.CY)
		p.backend.DrawCircle(cx, cy, c.R*p.scaleAt(local), Paint{Stroke: &canvas.Stroke{
			Color: c.Stroke.Color,
			Width: c.Stroke.Width * p.scaleAt(local),
		}})
	}
}

func (p *pass) emitFill(cmd canvas.Command, local canvas.Transform2D) {
	switch c := cmd.(type) {
	case canvas.Polygon:
		p.backend.DrawPolygon(p.mapPoints(local, c.Points), Paint{Fill: c.Fill})
	case canvas.Rect:
		p.backend.DrawPolygon(p.mapPoints(local, rectPoints(c)), Paint{Fill: c.Fill})
	case canvas.Circle:
		cx, cy := p.mapPoint(local, c.CX, c.CY)
		p.backend.DrawCircle(cx, cy, c.R*p.scaleAt(local), Paint{Fill: c.Fill})
	}
}

func (p *pass) drawText(cmd canvas.Text, source string, local canvas.Transform2D) {
	if sa, ok := p.backend.(SourceAware); ok {
		sa.SetSource(source)
	}
	x, y := p.mapPoint(local, cmd.X, cmd.Y)
	style := cmd.Style
	style.Size *= p.scaleAt(local)
	p.backend.DrawText(x, y, cmd.S, style)
}
