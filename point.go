package cline

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Point is a point in the plane given as a real pair. Everywhere a
// constructor accepts a point, it accepts either a Point or a complex128,
// where x is the real part and y the imaginary part.
type Point struct {
	X float64
	Y float64
}

// Planar is the set of types that constructors accept as points.
type Planar interface {
	complex128 | Point
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointOf returns the point x + iy for z = x + iy.
func PointOf(z complex128) Point {
	return Point{X: real(z), Y: imag(z)}
}

// Complex returns the point as the complex number x + iy.
func (pt Point) Complex() complex128 {
	return complex(pt.X, pt.Y)
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

func toComplex[P Planar](p P) complex128 {
	switch p := any(p).(type) {
	case complex128:
		return p
	case Point:
		return p.Complex()
	default:
		panic("unreachable")
	}
}

// abs2 returns |z|², squaring the hypotenuse rather than summing squares.
func abs2(z complex128) float64 {
	h := cmplx.Abs(z)
	return h * h
}

// near reports whether z and w are closer than Epsilon.
func near(z, w complex128) bool {
	return cmplx.Abs(z-w) < Epsilon
}
