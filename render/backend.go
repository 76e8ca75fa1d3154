// Package render replays captured command buffers against pluggable
// backends. Backends receive geometry in page-space points, already mapped
// through a view.RenderMapping; the renderer owns transform composition,
// symbol flattening and stroke/fill batching.
package render

import "github.com/plotkit/plotkit/canvas"

// Paint carries the aspects of a shape to draw. The renderer batches stroke
// and fill aspects separately and sets at most one per call; other callers
// may set both, meaning fill first, then stroke the same path.
type Paint struct {
	Stroke *canvas.Stroke
	Fill   *canvas.Color
}

// Backend is implemented by replay consumers. All coordinates are page-space
// points; stroke widths and text sizes are pre-scaled.
type Backend interface {
	DrawLine(x0, y0, x1, y1 float64, stroke canvas.Stroke)
	DrawPolyline(pts []canvas.Point, stroke canvas.Stroke)
	DrawPolygon(pts []canvas.Point, paint Paint)
	DrawCircle(cx, cy, r float64, paint Paint)
	DrawText(x, y float64, s string, style canvas.TextStyle)
}

// SourceAware is optionally implemented by backends that attribute geometry
// to scene entities (e.g. hit-testing). The renderer calls SetSource before
// flushing each batch.
type SourceAware interface {
	SetSource(tag string)
}
