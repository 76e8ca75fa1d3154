package canvas

import "math"

// Transform2D is a 2D affine transform in PDF operand order:
//
//	x' = A*x + C*y + TX
//	y' = B*x + D*y + TY
//
// The zero value is not useful; start from Identity.
type Transform2D struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the neutral transform.
func Identity() Transform2D { return Transform2D{A: 1, D: 1} }

// Translation returns a pure translation.
func Translation(tx, ty float64) Transform2D { return Transform2D{A: 1, D: 1, TX: tx, TY: ty} }

// Scaling returns a pure scale about the origin.
func Scaling(sx, sy float64) Transform2D { return Transform2D{A: sx, D: sy} }

// Rotation returns a rotation about the origin, angle in radians.
func Rotation(angle float64) Transform2D {
	c, s := math.Cos(angle), math.Sin(angle)
	return Transform2D{A: c, B: s, C: -s, D: c}
}

// Mul composes two transforms. The right operand is applied first:
// t.Mul(o).Apply(p) == t.Apply(o.Apply(p)).
func (t Transform2D) Mul(o Transform2D) Transform2D {
	return Transform2D{
		A:  t.A*o.A + t.C*o.B,
		B:  t.B*o.A + t.D*o.B,
		C:  t.A*o.C + t.C*o.D,
		D:  t.B*o.C + t.D*o.D,
		TX: t.A*o.TX + t.C*o.TY + t.TX,
		TY: t.B*o.TX + t.D*o.TY + t.TY,
	}
}

// Apply maps a point through the transform.
func (t Transform2D) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.TX, t.B*x + t.D*y + t.TY
}

// ApplyVec maps a vector, ignoring translation.
func (t Transform2D) ApplyVec(x, y float64) (float64, float64) {
	return t.A*x + t.C*y, t.B*x + t.D*y
}

// ScaleFactor returns the uniform scale of the linear part, used to scale
// stroke widths and circle radii after transformation.
func (t Transform2D) ScaleFactor() float64 {
	sx := math.Hypot(t.A, t.B)
	sy := math.Hypot(t.C, t.D)
	if sx > sy {
		return sx
	}
	return sy
}

// IsIdentity reports whether the transform is (numerically) the identity.
func (t Transform2D) IsIdentity() bool {
	const eps = 1e-12
	return math.Abs(t.A-1) < eps && math.Abs(t.B) < eps &&
		math.Abs(t.C) < eps && math.Abs(t.D-1) < eps &&
		math.Abs(t.TX) < eps && math.Abs(t.TY) < eps
}

// Invert returns the inverse transform, or the identity if the transform is
// singular.
func (t Transform2D) Invert() Transform2D {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-12 {
		return Identity()
	}
	inv := 1 / det
	return Transform2D{
		A:  t.D * inv,
		B:  -t.B * inv,
		C:  -t.C * inv,
		D:  t.A * inv,
		TX: (t.C*t.TY - t.D*t.TX) * inv,
		TY: (t.B*t.TX - t.A*t.TY) * inv,
	}
}
