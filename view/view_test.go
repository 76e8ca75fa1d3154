package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// tenByTen is a camera showing exactly a 10x10 world box centered on the
// origin: 500px viewport at zoom 1 over 50 px/unit.
var tenByTen = ViewState{
	Zoom:           1,
	ViewportWidth:  500,
	ViewportHeight: 500,
	View:           ViewTop,
}

func TestComputeViewBoundsCentered(t *testing.T) {
	b, err := ComputeViewBounds(tenByTen)
	require.NoError(t, err)
	require.Equal(t, Bounds{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}, b)
}

func TestComputeViewBoundsPan(t *testing.T) {
	s := tenByTen
	s.OffsetPixelsX = 100 // 2 world units at this density
	s.OffsetPixelsY = -50
	b, err := ComputeViewBounds(s)
	require.NoError(t, err)
	require.InDelta(t, -3, b.MinX, 1e-12)
	require.InDelta(t, 7, b.MaxX, 1e-12)
	require.InDelta(t, -6, b.MinY, 1e-12)
	require.InDelta(t, 4, b.MaxY, 1e-12)
}

func TestComputeViewBoundsZoomShrinksExtent(t *testing.T) {
	s := tenByTen
	s.Zoom = 2
	b, err := ComputeViewBounds(s)
	require.NoError(t, err)
	require.InDelta(t, 5, b.Width(), 1e-12)
	require.InDelta(t, 5, b.Height(), 1e-12)
}

func TestComputeViewBoundsRejectsInvalidState(t *testing.T) {
	s := tenByTen
	s.Zoom = 0
	_, err := ComputeViewBounds(s)
	require.Error(t, err)

	s = tenByTen
	s.Zoom = math.Inf(1)
	_, err = ComputeViewBounds(s)
	require.Error(t, err)

	s = tenByTen
	s.ViewportWidth = 0
	_, err = ComputeViewBounds(s)
	require.Error(t, err)

	require.False(t, s.Valid())
	require.True(t, tenByTen.Valid())
}

func TestBuildViewMappingFitsA3Portrait(t *testing.T) {
	// 10x10 world box onto an 842x1191 page with a 36pt margin. Width is
	// the limiting axis: (842-72)/10 = 77.
	m, err := BuildViewMapping(tenByTen, 842, 1191, 36)
	require.NoError(t, err)
	require.InDelta(t, 77.0, m.Scale, 1e-9)
	require.InDelta(t, 36.0, m.OffsetX, 1e-9)
	require.InDelta(t, 770.0, m.DrawHeight, 1e-9)
	// Vertical slack centers the content: 36 + (1119-770)/2.
	require.InDelta(t, 210.5, m.OffsetY, 1e-9)
}

func TestBuildViewMappingRejectsOversizedMargin(t *testing.T) {
	_, err := BuildViewMapping(tenByTen, 100, 100, 60)
	require.Error(t, err)
}

func TestMapFlipsY(t *testing.T) {
	m, err := BuildViewMapping(tenByTen, 842, 1191, 36)
	require.NoError(t, err)

	// World y grows downward, page y grows upward: the world's visually
	// lowest row (MaxY) lands at the bottom of the drawable band.
	x, y := m.Map(-5, 5)
	require.InDelta(t, 36, x, 1e-9)
	require.InDelta(t, 210.5, y, 1e-9)

	// The visually highest row (MinY) lands at the top.
	x, y = m.Map(-5, -5)
	require.InDelta(t, 36, x, 1e-9)
	require.InDelta(t, 980.5, y, 1e-9)

	// Center of the box maps to the page center horizontally.
	x, _ = m.Map(0, 0)
	require.InDelta(t, 421, x, 1e-9)
}

func TestOrientationString(t *testing.T) {
	require.Equal(t, "top", ViewTop.String())
	require.Equal(t, "front", ViewFront.String())
	require.Equal(t, "side", ViewSide.String())
}
