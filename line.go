package cline

import (
	"math"
	"math/cmplx"
)

// Line is the payload of a cline of kind [LineKind], whose equation reduces
// to 2·Re(α·z) + d = 0, or in Cartesian form a·x − b·y + d/2 = 0.
type Line struct {
	/// Re(α).
	A float64
	/// Im(α).
	B float64
	// Normal is the Cartesian normal (a, −b), i.e. ᾱ.
	Normal complex128
	// Direction is (b, a), perpendicular to Normal.
	Direction complex128
	// DistanceFromOrigin is |d| / 2|α|, or +Inf if α is zero.
	DistanceFromOrigin float64
	// PointOnLine is a point satisfying the line's equation. It lies on one
	// of the coordinate axes.
	PointOnLine complex128
}

// Eval returns the point PointOnLine + t·Direction.
func (l Line) Eval(t float64) complex128 {
	return l.PointOnLine + complex(t, 0)*l.Direction
}

// Distance returns the distance from z to the line. It is NaN for a line
// with a zero normal.
func (l Line) Distance(z complex128) float64 {
	n := cmplx.Abs(l.Normal)
	return math.Abs(dot(z-l.PointOnLine, l.Normal)) / n
}

// Nearest returns the point on the line closest to z.
func (l Line) Nearest(z complex128) complex128 {
	v := l.Direction
	t := dot(z-l.PointOnLine, v) / abs2(v)
	return l.Eval(t)
}

func (l Line) IsInf() bool {
	return cmplx.IsInf(l.PointOnLine) || cmplx.IsInf(l.Direction)
}

func (l Line) IsNaN() bool {
	return cmplx.IsNaN(l.PointOnLine) || cmplx.IsNaN(l.Direction)
}

// dot returns the dot product of z and w taken as plane vectors.
func dot(z, w complex128) float64 {
	return real(z)*real(w) + imag(z)*imag(w)
}
