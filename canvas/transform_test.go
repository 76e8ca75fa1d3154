package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformIdentity(t *testing.T) {
	id := Identity()
	require.True(t, id.IsIdentity())
	x, y := id.Apply(3.5, -2)
	require.Equal(t, 3.5, x)
	require.Equal(t, -2.0, y)
}

func TestTransformTranslationAndScaling(t *testing.T) {
	x, y := Translation(10, 20).Apply(1, 2)
	require.Equal(t, 11.0, x)
	require.Equal(t, 22.0, y)

	x, y = Scaling(2, 3).Apply(1, 2)
	require.Equal(t, 2.0, x)
	require.Equal(t, 6.0, y)
}

func TestTransformRotation(t *testing.T) {
	// Quarter turn takes the x axis onto the y axis.
	x, y := Rotation(math.Pi/2).Apply(1, 0)
	require.InDelta(t, 0, x, 1e-12)
	require.InDelta(t, 1, y, 1e-12)
}

func TestTransformMulAppliesRightOperandFirst(t *testing.T) {
	a := Translation(5, 0)
	b := Scaling(2, 2)
	for _, pt := range []Point{{0, 0}, {1, 1}, {-3, 7}} {
		bx, by := b.Apply(pt.X, pt.Y)
		wantX, wantY := a.Apply(bx, by)
		gotX, gotY := a.Mul(b).Apply(pt.X, pt.Y)
		require.InDelta(t, wantX, gotX, 1e-12)
		require.InDelta(t, wantY, gotY, 1e-12)
	}
}

func TestTransformScaleFactor(t *testing.T) {
	require.InDelta(t, 3, Scaling(3, 2).ScaleFactor(), 1e-12)
	// Rotation preserves lengths.
	require.InDelta(t, 1, Rotation(1.2).ScaleFactor(), 1e-12)
	require.InDelta(t, 2, Rotation(0.7).Mul(Scaling(2, 2)).ScaleFactor(), 1e-12)
}

func TestTransformInvertRoundTrip(t *testing.T) {
	tr := Translation(4, -2).Mul(Rotation(0.3)).Mul(Scaling(2, 5))
	inv := tr.Invert()
	x, y := inv.Apply(tr.Apply(7, -11))
	require.InDelta(t, 7, x, 1e-9)
	require.InDelta(t, -11, y, 1e-9)
}

func TestTransformInvertSingular(t *testing.T) {
	singular := Scaling(0, 0)
	require.True(t, singular.Invert().IsIdentity())
}
