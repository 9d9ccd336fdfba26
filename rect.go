package cline

import "math"

// Rect is an axis-aligned rectangle in the plane.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of z0 and z1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(z0, z1 complex128) Rect {
	return Rect{real(z0), imag(z0), real(z1), imag(z1)}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() complex128 {
	return complex(0.5*(r.X0+r.X1), 0.5*(r.Y0+r.Y1))
}

// Contains reports whether z lies inside the rectangle or on its boundary.
func (r Rect) Contains(z complex128) bool {
	x, y := real(z), imag(z)
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing r and z.
func (r Rect) UnionPoint(z complex128) Rect {
	return r.Union(NewRectFromPoints(z, z))
}

// Inflate returns a rectangle grown by width in each horizontal direction and by
// height in each vertical direction.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}.Abs()
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y1)
}

// BoundingBox returns the smallest rectangle enclosing the cline's locus
// and its source points. Lines are unbounded and invalid clines have no
// locus, so for those it only reports ok if there are source points.
func (cl Cline) BoundingBox() (Rect, bool) {
	var (
		r  Rect
		ok bool
	)
	switch cl.kind {
	case CircleKind:
		r, ok = cl.circle.BoundingBox(), true
	case PointKind:
		r, ok = NewRectFromPoints(cl.point, cl.point), true
	}
	for _, z := range cl.sources {
		if !ok {
			r, ok = NewRectFromPoints(z, z), true
			continue
		}
		r = r.UnionPoint(z)
	}
	return r, ok
}
