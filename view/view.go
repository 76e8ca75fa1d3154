// Package view derives world-to-page mappings from 2D camera state.
package view

import (
	"fmt"
	"math"
)

// PixelsPerUnit is the screen density of the plan view at zoom 1: one world
// unit covers this many viewport pixels.
const PixelsPerUnit = 50.0

// Orientation selects the projection plane of the 2D view.
type Orientation uint8

const (
	ViewTop Orientation = iota
	ViewFront
	ViewSide
)

func (o Orientation) String() string {
	switch o {
	case ViewTop:
		return "top"
	case ViewFront:
		return "front"
	case ViewSide:
		return "side"
	}
	return "unknown"
}

// ViewState is the camera state of a 2D viewer at capture time.
type ViewState struct {
	OffsetPixelsX  float64
	OffsetPixelsY  float64
	Zoom           float64
	ViewportWidth  float64
	ViewportHeight float64
	View           Orientation
}

// Valid reports whether the state can produce a mapping.
func (s ViewState) Valid() bool {
	return s.ViewportWidth > 0 && s.ViewportHeight > 0 &&
		s.Zoom > 0 && !math.IsInf(s.Zoom, 0) && !math.IsNaN(s.Zoom)
}

// Bounds is a world-space rectangle.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ComputeViewBounds converts camera state into the visible world rectangle:
// a symmetric box around the camera target whose extent is the viewport in
// pixels divided by the effective pixel density.
func ComputeViewBounds(s ViewState) (Bounds, error) {
	if s.ViewportWidth <= 0 || s.ViewportHeight <= 0 {
		return Bounds{}, fmt.Errorf("viewport %gx%g is not positive", s.ViewportWidth, s.ViewportHeight)
	}
	if s.Zoom <= 0 || math.IsInf(s.Zoom, 0) || math.IsNaN(s.Zoom) {
		return Bounds{}, fmt.Errorf("zoom %g is not a positive finite number", s.Zoom)
	}
	density := PixelsPerUnit * s.Zoom
	halfW := s.ViewportWidth / density / 2
	halfH := s.ViewportHeight / density / 2
	centerX := s.OffsetPixelsX / density
	centerY := s.OffsetPixelsY / density
	b := Bounds{
		MinX: centerX - halfW,
		MinY: centerY - halfH,
		MaxX: centerX + halfW,
		MaxY: centerY + halfH,
	}
	if b.Width() <= 0 || b.Height() <= 0 {
		return Bounds{}, fmt.Errorf("view bounds %gx%g are degenerate", b.Width(), b.Height())
	}
	return b, nil
}

// RenderMapping maps world coordinates onto a target rectangle in output
// points. It is computed once per export or render pass and is read-only
// afterwards.
type RenderMapping struct {
	MinX, MinY float64
	Scale      float64
	OffsetX    float64
	OffsetY    float64
	DrawHeight float64
}

// BuildViewMapping fits the visible world bounds of s into a target rectangle
// with the given margin on all sides. The scale is uniform and
// aspect-preserving; the scaled content is centered in the drawable area.
func BuildViewMapping(s ViewState, targetWidth, targetHeight, margin float64) (RenderMapping, error) {
	bounds, err := ComputeViewBounds(s)
	if err != nil {
		return RenderMapping{}, err
	}
	drawW := targetWidth - 2*margin
	drawH := targetHeight - 2*margin
	if drawW <= 0 || drawH <= 0 {
		return RenderMapping{}, fmt.Errorf("drawable area %gx%g is not positive", drawW, drawH)
	}
	scale := math.Min(drawW/bounds.Width(), drawH/bounds.Height())
	return RenderMapping{
		MinX:       bounds.MinX,
		MinY:       bounds.MinY,
		Scale:      scale,
		OffsetX:    margin + (drawW-bounds.Width()*scale)/2,
		OffsetY:    margin + (drawH-bounds.Height()*scale)/2,
		DrawHeight: bounds.Height() * scale,
	}, nil
}

// Map converts a world point to target points. World coordinates follow the
// viewer's screen convention with y growing downward; the page origin is at
// the bottom left with y growing upward, so Map flips the vertical axis.
func (m RenderMapping) Map(x, y float64) (float64, float64) {
	px := (x-m.MinX)*m.Scale + m.OffsetX
	py := m.OffsetY + (m.DrawHeight - (y-m.MinY)*m.Scale)
	return px, py
}
