package cline

import (
	"math"
	"math/cmplx"
)

// Circle is the payload of a cline of kind [CircleKind].
type Circle struct {
	Center complex128
	Radius float64
}

// Eval returns the point on the circle at angle th, in radians, measured
// anti-clockwise from the positive real axis.
func (c Circle) Eval(th float64) complex128 {
	sin, cos := math.Sincos(th)
	return c.Center + complex(c.Radius*cos, c.Radius*sin)
}

// Contains reports whether z lies strictly inside the circle.
func (c Circle) Contains(z complex128) bool {
	return abs2(z-c.Center) < c.Radius*c.Radius
}

// Distance returns the distance from z to the circle's circumference.
func (c Circle) Distance(z complex128) float64 {
	return math.Abs(cmplx.Abs(z-c.Center) - c.Radius)
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x, y := real(c.Center), imag(c.Center)
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) IsInf() bool {
	return cmplx.IsInf(c.Center) || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return cmplx.IsNaN(c.Center) || math.IsNaN(c.Radius)
}
