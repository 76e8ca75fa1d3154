package canvas

// RecordingCanvas implements the drawing-surface contract by appending
// commands to a CommandBuffer instead of rasterizing. Recording cannot fail;
// capacity is bounded only by host memory.
//
// BeginFrame and EndFrame bracket one capture pass. After EndFrame the buffer
// and symbol snapshot are complete and ownership transfers to the caller; the
// canvas can be re-armed with another BeginFrame.
//
// A RecordingCanvas is not safe for concurrent use; capture happens on the
// thread that owns the live rendering context.
type RecordingCanvas struct {
	buf       *CommandBuffer
	recording bool
	source    string

	transform Transform2D

	// Symbol definition in progress, if any.
	def   *CommandBuffer
	defID int
	defs  map[int]SymbolDefinition
}

// NewRecordingCanvas returns an idle canvas.
func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{transform: Identity()}
}

// BeginFrame starts a capture pass with a fresh buffer, identity transform
// and no source tag.
func (c *RecordingCanvas) BeginFrame() {
	c.buf = NewCommandBuffer()
	c.recording = true
	c.source = ""
	c.transform = Identity()
	c.def = nil
	c.defs = nil
}

// EndFrame completes the pass and moves the captured buffer and symbol
// snapshot out of the canvas. The returned snapshot is nil when no symbols
// were defined.
func (c *RecordingCanvas) EndFrame() (*CommandBuffer, *SymbolSnapshot) {
	if c.def != nil {
		// Unterminated definition; close it so the frame buffer stays
		// well formed.
		c.EndSymbol()
	}
	buf := c.buf
	var snap *SymbolSnapshot
	if len(c.defs) > 0 {
		snap = &SymbolSnapshot{defs: c.defs}
	}
	c.buf = nil
	c.defs = nil
	c.recording = false
	return buf, snap
}

// Recording reports whether a capture pass is open.
func (c *RecordingCanvas) Recording() bool { return c.recording }

// SetSource tags subsequent records with the owning scene entity's key.
func (c *RecordingCanvas) SetSource(tag string) { c.source = tag }

// Source returns the active source tag.
func (c *RecordingCanvas) Source() string { return c.source }

// target returns the buffer records currently land in: the symbol definition
// buffer while one is open, the frame buffer otherwise.
func (c *RecordingCanvas) target() *CommandBuffer {
	if c.def != nil {
		return c.def
	}
	return c.buf
}

func (c *RecordingCanvas) record(cmd Command, meta Meta) {
	if !c.recording {
		return
	}
	c.target().append(cmd, meta, c.source)
}

// Save pushes the canvas transform state.
func (c *RecordingCanvas) Save() { c.record(Save{}, Meta{}) }

// Restore pops the canvas transform state.
func (c *RecordingCanvas) Restore() { c.record(Restore{}, Meta{}) }

// SetTransform records an absolute replacement of the canvas transform.
func (c *RecordingCanvas) SetTransform(t Transform2D) {
	c.transform = t
	c.record(SetTransform{T: t}, Meta{})
}

// Transform returns the transform most recently recorded.
func (c *RecordingCanvas) Transform() Transform2D { return c.transform }

// DrawLine records a stroked segment.
func (c *RecordingCanvas) DrawLine(x0, y0, x1, y1 float64, stroke Stroke) {
	c.record(Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Stroke: stroke}, Meta{HasStroke: true})
}

// DrawPolyline records an open stroked chain. The points are copied.
func (c *RecordingCanvas) DrawPolyline(pts []Point, stroke Stroke) {
	if len(pts) < 2 {
		return
	}
	c.record(Polyline{Points: clonePoints(pts), Stroke: stroke}, Meta{HasStroke: true})
}

// DrawPolygon records a closed chain, optionally filled. The points are
// copied.
func (c *RecordingCanvas) DrawPolygon(pts []Point, stroke Stroke, fill *Color) {
	if len(pts) < 3 {
		return
	}
	c.record(Polygon{Points: clonePoints(pts), Stroke: stroke, Fill: cloneColor(fill)},
		Meta{HasStroke: true, HasFill: fill != nil})
}

// DrawRect records an axis-aligned rectangle, optionally filled.
func (c *RecordingCanvas) DrawRect(x, y, w, h float64, stroke Stroke, fill *Color) {
	c.record(Rect{X: x, Y: y, W: w, H: h, Stroke: stroke, Fill: cloneColor(fill)},
		Meta{HasStroke: true, HasFill: fill != nil})
}

// DrawCircle records a circle, optionally filled.
func (c *RecordingCanvas) DrawCircle(cx, cy, r float64, stroke Stroke, fill *Color) {
	c.record(Circle{CX: cx, CY: cy, R: r, Stroke: stroke, Fill: cloneColor(fill)},
		Meta{HasStroke: true, HasFill: fill != nil})
}

// DrawText records a label.
func (c *RecordingCanvas) DrawText(x, y float64, s string, style TextStyle) {
	if s == "" {
		return
	}
	c.record(Text{X: x, Y: y, S: s, Style: style}, Meta{})
}

// BeginSymbol opens a symbol definition. Subsequent draw calls land in the
// symbol's local buffer until EndSymbol. Definitions do not nest; opening a
// new one closes the previous definition first. Redefining an id replaces the
// earlier definition.
func (c *RecordingCanvas) BeginSymbol(id int) {
	if !c.recording {
		return
	}
	if c.def != nil {
		c.EndSymbol()
	}
	c.buf.append(BeginSymbol{ID: id}, Meta{}, c.source)
	c.def = NewCommandBuffer()
	c.defID = id
}

// EndSymbol closes the open symbol definition and publishes it into the
// snapshot under construction. Without a matching BeginSymbol it is a no-op.
func (c *RecordingCanvas) EndSymbol() {
	if !c.recording || c.def == nil {
		return
	}
	if c.defs == nil {
		c.defs = make(map[int]SymbolDefinition)
	}
	c.defs[c.defID] = SymbolDefinition{Local: c.def}
	c.def = nil
	c.buf.append(EndSymbol{}, Meta{}, c.source)
}

// PlaceSymbol records an instance of a symbol at the given local placement
// transform. The symbol need not be defined yet; unresolved instances are
// skipped on replay.
func (c *RecordingCanvas) PlaceSymbol(id int, t Transform2D) {
	c.record(SymbolInstance{ID: id, T: t}, Meta{})
}

func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

func cloneColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}
