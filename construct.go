package cline

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

var (
	// ErrDistinctPointsRequired is returned by [FromLine] when the two
	// points coincide within Epsilon and so do not define a direction.
	ErrDistinctPointsRequired = errors.New("distinct points required")

	// ErrInvalidRadius is returned by [FromCircle] for a radius that is not
	// positive.
	ErrInvalidRadius = errors.New("invalid radius")
)

// FromThreePoints returns the cline through z0, z1 and z2.
//
// Three coincident points give a cline of kind [PointKind]. If only z0 and
// z1 coincide, the result is the line through z0 and z2. Otherwise
// collinear points give a line and non-collinear points give a circle.
//
// The circle's coefficients come from a 2×2 linear system. If that system
// is singular within Epsilon, α falls back to −z̄0.
//
// The points are retained and returned by [Cline.Sources] in every case.
func FromThreePoints[P Planar](p0, p1, p2 P) Cline {
	z0, z1, z2 := toComplex(p0), toComplex(p1), toComplex(p2)

	var cl Cline
	switch {
	case near(z1, z0) && near(z2, z0):
		cl = New(1, -cmplx.Conj(z0), abs2(z0))
	case near(z1, z0):
		cl = lineThrough(z0, z2)
	case math.Abs(imag((z2-z0)/(z1-z0))) <= Epsilon:
		cl = lineThrough(z0, z1)
	default:
		cl = circleThrough(z0, z1, z2)
	}
	cl.sources = []complex128{z0, z1, z2}
	return cl
}

// FromLine returns the line through z0 and z1. It returns
// ErrDistinctPointsRequired if the points are not at least Epsilon apart.
func FromLine[P Planar](p0, p1 P) (Cline, error) {
	z0, z1 := toComplex(p0), toComplex(p1)
	if cmplx.Abs(z1-z0) <= Epsilon {
		return Cline{}, errors.Wrapf(ErrDistinctPointsRequired, "line through %v and %v", z0, z1)
	}
	cl := lineThrough(z0, z1)
	cl.sources = []complex128{z0, z1}
	return cl, nil
}

// FromCircle returns the circle with the given center and radius. It
// returns ErrInvalidRadius if radius is not positive.
//
// The result's [Circle] is exactly center and radius, not values
// recomputed from the equation's coefficients.
func FromCircle[P Planar](center P, radius float64) (Cline, error) {
	if !(radius > 0) {
		return Cline{}, errors.Wrapf(ErrInvalidRadius, "radius %g", radius)
	}
	z := toComplex(center)
	cl := New(1, -cmplx.Conj(z), abs2(z)-radius*radius)
	cl.kind = CircleKind
	cl.circle = Circle{Center: z, Radius: radius}
	return cl, nil
}

// lineThrough returns the line through two distinct points. Its normal ᾱ
// is the direction z1 − z0 rotated by a quarter turn.
func lineThrough(z0, z1 complex128) Cline {
	alpha := 1i * cmplx.Conj(z1-z0)
	d := -2 * real(alpha*z0)
	return New(0, alpha, d)
}

// circleThrough returns the circle through three non-collinear points.
//
// With c = 1, subtracting the equation at z0 from the equations at z1 and
// z2 leaves Re(α·Δk) = −Sk/2, where Δk = zk − z0 and Sk = |zk|² − |z0|².
func circleThrough(z0, z1, z2 complex128) Cline {
	d1, d2 := z1-z0, z2-z0
	s1 := abs2(z1) - abs2(z0)
	s2 := abs2(z2) - abs2(z0)

	// | Re(Δ1) −Im(Δ1) | |Re(α)|   |−S1/2|
	// | Re(Δ2) −Im(Δ2) | |Im(α)| = |−S2/2|
	m00, m01 := real(d1), -imag(d1)
	m10, m11 := real(d2), -imag(d2)
	r0, r1 := -s1/2, -s2/2

	var alpha complex128
	if det := m00*m11 - m01*m10; math.Abs(det) > Epsilon {
		alpha = complex(
			(r0*m11-m01*r1)/det,
			(m00*r1-r0*m10)/det,
		)
	} else {
		// XXX the fallback has no clear geometric meaning.
		alpha = -cmplx.Conj(z0)
	}

	d := -(abs2(z0) + 2*real(alpha*z0))
	return New(1, alpha, d)
}
