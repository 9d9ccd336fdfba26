package cline

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
)

// Epsilon is the tolerance used for every zero and equality test in this
// package, including classification.
const Epsilon = 1e-10

// Kind is the classification of a cline's equation.
type Kind int

const (
	/// The equation describes a circle of positive radius.
	CircleKind Kind = iota + 1
	/// The equation describes a straight line (c = 0).
	LineKind
	/// The equation describes a single point (zero radius).
	PointKind
	/// The equation has no real locus (negative squared radius).
	InvalidKind
)

func (k Kind) String() string {
	switch k {
	case CircleKind:
		return "Circle"
	case LineKind:
		return "Line"
	case PointKind:
		return "Point"
	case InvalidKind:
		return "Invalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Cline is a circle or line in the complex plane, given by the equation
//
//	c·|z|² + α·z + ᾱ·z̄ + d = 0
//
// with c and d real. A Cline is fully computed when it is constructed and
// never changes afterwards. Depending on its [Kind], exactly one of
// [Cline.Circle], [Cline.Point] and [Cline.Line] reports ok; an invalid
// cline has none of them.
//
// The zero value is not a valid cline. Use [New] or one of the From
// constructors.
type Cline struct {
	c, d  float64
	alpha complex128
	disc  float64
	kind  Kind

	circle Circle
	point  complex128
	line   Line

	sources []complex128
}

// New returns the cline with equation coefficients c, alpha and d.
// Every combination of coefficients is accepted; degenerate equations
// classify as [PointKind] or [InvalidKind].
func New(c float64, alpha complex128, d float64) Cline {
	cl := Cline{
		c:     c,
		d:     d,
		alpha: alpha,
		disc:  discriminant(c, alpha, d),
	}
	cl.kind = classify(c, cl.disc)

	switch cl.kind {
	case CircleKind:
		cl.circle = Circle{
			Center: centerOf(c, alpha),
			Radius: math.Sqrt(cl.disc) / math.Abs(c),
		}
	case PointKind:
		cl.point = centerOf(c, alpha)
	case LineKind:
		cl.line = lineOf(alpha, d)
	}
	return cl
}

// Classify returns the kind of the equation c·|z|² + α·z + ᾱ·z̄ + d = 0
// without constructing a cline.
func Classify(c float64, alpha complex128, d float64) Kind {
	return classify(c, discriminant(c, alpha, d))
}

func classify(c, disc float64) Kind {
	if math.Abs(c) <= Epsilon {
		return LineKind
	}
	switch {
	case disc > Epsilon:
		return CircleKind
	case disc < -Epsilon:
		return InvalidKind
	default:
		return PointKind
	}
}

// discriminant computes |α|² − c·d.
func discriminant(c float64, alpha complex128, d float64) float64 {
	return abs2(alpha) - c*d
}

// centerOf returns −ᾱ/c, the center of a circle or point equation.
func centerOf(c float64, alpha complex128) complex128 {
	return complex(-real(alpha)/c, imag(alpha)/c)
}

// lineOf derives the line 2·Re(α·z) + d = 0, i.e. a·x − b·y + d/2 = 0.
func lineOf(alpha complex128, d float64) Line {
	a, b := real(alpha), imag(alpha)
	l := Line{
		A:         a,
		B:         b,
		Normal:    complex(a, -b),
		Direction: complex(b, a),
	}
	if n := cmplx.Abs(alpha); n > Epsilon {
		l.DistanceFromOrigin = math.Abs(d) / (2 * n)
	} else {
		l.DistanceFromOrigin = math.Inf(1)
	}

	// Solve for the coordinate with the larger coefficient.
	if math.Abs(a) > math.Abs(b) {
		l.PointOnLine = complex(-d/(2*a), 0)
	} else {
		l.PointOnLine = complex(0, d/(2*b))
	}
	return l
}

// Kind returns the classification of the cline.
func (cl Cline) Kind() Kind { return cl.kind }

// C returns the real coefficient of |z|².
func (cl Cline) C() float64 { return cl.c }

// Alpha returns the complex coefficient of z.
func (cl Cline) Alpha() complex128 { return cl.alpha }

// D returns the real constant term.
func (cl Cline) D() float64 { return cl.d }

// Discriminant returns |α|² − c·d.
func (cl Cline) Discriminant() float64 { return cl.disc }

// Circle returns the circle described by the cline, if it is one.
func (cl Cline) Circle() (Circle, bool) {
	return cl.circle, cl.kind == CircleKind
}

// Point returns the single point described by the cline, if it is one.
func (cl Cline) Point() (complex128, bool) {
	return cl.point, cl.kind == PointKind
}

// Line returns the line described by the cline, if it is one.
func (cl Cline) Line() (Line, bool) {
	return cl.line, cl.kind == LineKind
}

// Sources returns the points the cline was constructed from, in the order
// they were given. It returns nil for clines built from coefficients or
// from a center and radius.
func (cl Cline) Sources() []complex128 {
	return slices.Clone(cl.sources)
}

// Eval evaluates the left-hand side of the cline's equation at z.
func (cl Cline) Eval(z complex128) float64 {
	return cl.c*abs2(z) + 2*real(cl.alpha*z) + cl.d
}

// PassesThrough reports whether z lies on the cline. The tolerance is
// Epsilon relative to the magnitude of the equation's terms at z.
func (cl Cline) PassesThrough(z complex128) bool {
	if cl.kind == InvalidKind {
		return false
	}
	r := cmplx.Abs(z)
	scale := 1 + math.Abs(cl.c)*r*r + 2*cmplx.Abs(cl.alpha)*r + math.Abs(cl.d)
	return math.Abs(cl.Eval(z)) <= Epsilon*scale
}
