package render

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/plotkit/plotkit/canvas"
)

// Region is an axis-aligned page-space rectangle.
type Region struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Region) intersects(o Region) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

func (r Region) extend(x, y float64) Region {
	return Region{
		MinX: math.Min(r.MinX, x),
		MinY: math.Min(r.MinY, y),
		MaxX: math.Max(r.MaxX, x),
		MaxY: math.Max(r.MaxY, y),
	}
}

// RegionPicker is a Backend that accumulates per-source bounding boxes in
// page space and answers rectangle hit-tests against them. It is the
// hit-testing consumer of the command stream: replay a buffer into a picker
// once, then query it for the entities under a marquee selection.
type RegionPicker struct {
	source string
	boxes  map[string]Region
}

// NewRegionPicker returns an empty picker.
func NewRegionPicker() *RegionPicker {
	return &RegionPicker{boxes: make(map[string]Region)}
}

// SetSource implements SourceAware.
func (p *RegionPicker) SetSource(tag string) { p.source = tag }

func (p *RegionPicker) add(x, y float64) {
	box, ok := p.boxes[p.source]
	if !ok {
		box = Region{MinX: x, MinY: y, MaxX: x, MaxY: y}
	} else {
		box = box.extend(x, y)
	}
	p.boxes[p.source] = box
}

func (p *RegionPicker) addStrokePad(pad float64) {
	if pad <= 0 {
		return
	}
	box, ok := p.boxes[p.source]
	if !ok {
		return
	}
	box.MinX -= pad
	box.MinY -= pad
	box.MaxX += pad
	box.MaxY += pad
	p.boxes[p.source] = box
}

func (p *RegionPicker) DrawLine(x0, y0, x1, y1 float64, stroke canvas.Stroke) {
	p.add(x0, y0)
	p.add(x1, y1)
	p.addStrokePad(stroke.Width / 2)
}

func (p *RegionPicker) DrawPolyline(pts []canvas.Point, stroke canvas.Stroke) {
	for _, pt := range pts {
		p.add(pt.X, pt.Y)
	}
	p.addStrokePad(stroke.Width / 2)
}

func (p *RegionPicker) DrawPolygon(pts []canvas.Point, paint Paint) {
	for _, pt := range pts {
		p.add(pt.X, pt.Y)
	}
	if paint.Stroke != nil {
		p.addStrokePad(paint.Stroke.Width / 2)
	}
}

func (p *RegionPicker) DrawCircle(cx, cy, r float64, paint Paint) {
	p.add(cx-r, cy-r)
	p.add(cx+r, cy+r)
	if paint.Stroke != nil {
		p.addStrokePad(paint.Stroke.Width / 2)
	}
}

func (p *RegionPicker) DrawText(x, y float64, s string, style canvas.TextStyle) {
	// Labels participate in picking with a coarse box: advance estimated
	// from the rune count.
	p.add(x, y)
	p.add(x+float64(utf8.RuneCountInString(s))*style.Size*0.6, y+style.Size)
}

// Bounds returns the accumulated page-space box for one source.
func (p *RegionPicker) Bounds(source string) (Region, bool) {
	box, ok := p.boxes[source]
	return box, ok
}

// Pick returns the source tags whose bounds intersect the query rectangle,
// sorted for deterministic output.
func (p *RegionPicker) Pick(query Region) []string {
	var hits []string
	for source, box := range p.boxes {
		if box.intersects(query) {
			hits = append(hits, source)
		}
	}
	sort.Strings(hits)
	return hits
}
