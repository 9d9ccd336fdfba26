package cline

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		c     float64
		alpha complex128
		d     float64
		want  Kind
	}{
		{"circle", 1, -3 - 4i, 16, CircleKind},
		{"line", 0, 1 + 1i, 0, LineKind},
		{"line with tiny c", 1e-11, 1, 5, LineKind},
		{"degenerate line", 0, 0, 0, LineKind},
		{"point", 1, -1 - 1i, 2, PointKind},
		{"point within epsilon", 2, 0, -1e-11, PointKind},
		{"invalid", 1, 1, 2, InvalidKind},
		{"invalid with negative c", -1, 0, -3, InvalidKind},
		{"circle with negative c", -2, 1, 4, CircleKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.c, tt.alpha, tt.d); got != tt.want {
				t.Errorf("Classify(%v, %v, %v) = %v, want %v", tt.c, tt.alpha, tt.d, got, tt.want)
			}
			if got := New(tt.c, tt.alpha, tt.d).Kind(); got != tt.want {
				t.Errorf("New(%v, %v, %v).Kind() = %v, want %v", tt.c, tt.alpha, tt.d, got, tt.want)
			}
		})
	}
}

func TestClassifyTotal(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	coeff := func() float64 {
		// Bias towards zero so that every kind shows up.
		switch rng.IntN(4) {
		case 0:
			return 0
		case 1:
			return rng.Float64()*2e-10 - 1e-10
		default:
			return rng.Float64()*20 - 10
		}
	}

	seen := map[Kind]int{}
	for range 10000 {
		c, d := coeff(), coeff()
		alpha := complex(coeff(), coeff())
		cl := New(c, alpha, d)

		disc := cmplx.Abs(alpha)*cmplx.Abs(alpha) - c*d
		var want Kind
		switch {
		case math.Abs(c) <= Epsilon:
			want = LineKind
		case disc > Epsilon:
			want = CircleKind
		case disc < -Epsilon:
			want = InvalidKind
		default:
			want = PointKind
		}
		if cl.Kind() != want {
			t.Fatalf("New(%v, %v, %v) has kind %v, want %v", c, alpha, d, cl.Kind(), want)
		}

		_, isCircle := cl.Circle()
		_, isPoint := cl.Point()
		_, isLine := cl.Line()
		n := 0
		for _, ok := range []bool{isCircle, isPoint, isLine} {
			if ok {
				n++
			}
		}
		if want == InvalidKind && n != 0 || want != InvalidKind && n != 1 {
			t.Fatalf("New(%v, %v, %v) of kind %v: circle=%t point=%t line=%t",
				c, alpha, d, cl.Kind(), isCircle, isPoint, isLine)
		}
		if c, ok := cl.Circle(); ok && !(c.Radius >= 0) {
			t.Fatalf("negative radius %v", c.Radius)
		}
		seen[want]++
	}
	for _, k := range []Kind{CircleKind, LineKind, PointKind, InvalidKind} {
		if seen[k] == 0 {
			t.Errorf("no cline of kind %v was generated", k)
		}
	}
}

func TestNewCircle(t *testing.T) {
	cl := New(1, -3-4i, 16)
	if k := cl.Kind(); k != CircleKind {
		t.Fatalf("got kind %v, want %v", k, CircleKind)
	}
	if d := cl.Discriminant(); d != 9 {
		t.Errorf("got discriminant %v, want 9", d)
	}
	c, _ := cl.Circle()
	diff(t, Circle{Center: 3 - 4i, Radius: 3}, c, approx(1e-12))

	for _, th := range []float64{0, 1, 2.5, 4} {
		if z := c.Eval(th); !cl.PassesThrough(z) {
			t.Errorf("point %v at angle %v isn't on the circle, residual %v", z, th, cl.Eval(z))
		}
	}
}

func TestNewCircleNegativeC(t *testing.T) {
	// -2|z|² + 2Re(z) + 4 = 0 is |z - 0.5|² = 2.25.
	cl := New(-2, 1, 4)
	c, ok := cl.Circle()
	if !ok {
		t.Fatalf("got kind %v, want %v", cl.Kind(), CircleKind)
	}
	diff(t, Circle{Center: 0.5, Radius: 1.5}, c, approx(1e-12))
}

func TestNewPoint(t *testing.T) {
	cl := New(2, -2-4i, 10)
	z, ok := cl.Point()
	if !ok {
		t.Fatalf("got kind %v, want %v", cl.Kind(), PointKind)
	}
	diff(t, 1-2i, z, approx(1e-12))
	if !cl.PassesThrough(z) {
		t.Errorf("point %v should satisfy its own equation, residual %v", z, cl.Eval(z))
	}
}

func TestNewLine(t *testing.T) {
	// 2x - y = 2
	cl := New(0, 2+1i, -4)
	l, ok := cl.Line()
	if !ok {
		t.Fatalf("got kind %v, want %v", cl.Kind(), LineKind)
	}
	want := Line{
		A:                  2,
		B:                  1,
		Normal:             2 - 1i,
		Direction:          1 + 2i,
		DistanceFromOrigin: 2 / math.Sqrt(5),
		PointOnLine:        1,
	}
	diff(t, want, l, approx(1e-12))

	if got := dot(l.Normal, l.Direction); got != 0 {
		t.Errorf("normal and direction aren't perpendicular, dot product %v", got)
	}
	for _, z := range []complex128{1, 2 + 2i, 0 - 2i} {
		if !cl.PassesThrough(z) {
			t.Errorf("%v should be on the line, residual %v", z, cl.Eval(z))
		}
	}
	if cl.PassesThrough(0) {
		t.Error("origin shouldn't be on the line")
	}
}

func TestNewLinePointOnLine(t *testing.T) {
	tests := []struct {
		alpha complex128
		d     float64
		want  complex128
	}{
		// |a| > |b|: solve for x with y = 0.
		{2 + 1i, -4, 1},
		// |a| ≤ |b|: solve for y with x = 0.
		{1 + 3i, 6, 1i},
		{1 + 1i, 4, 2i},
		{-5, 10, 1},
	}
	for _, tt := range tests {
		cl := New(0, tt.alpha, tt.d)
		l, _ := cl.Line()
		diff(t, tt.want, l.PointOnLine, approx(1e-12))
		a, b := real(tt.alpha), imag(tt.alpha)
		x, y := real(l.PointOnLine), imag(l.PointOnLine)
		if r := a*x - b*y + tt.d/2; math.Abs(r) > 1e-12 {
			t.Errorf("point on line %v doesn't satisfy %vx - %vy + %v = 0, residual %v", l.PointOnLine, a, b, tt.d/2, r)
		}
	}
}

func TestNewDegenerateLine(t *testing.T) {
	cl := New(0, 0, 0)
	l, ok := cl.Line()
	if !ok {
		t.Fatalf("got kind %v, want %v", cl.Kind(), LineKind)
	}
	if !math.IsInf(l.DistanceFromOrigin, 1) {
		t.Errorf("got distance %v, want +Inf", l.DistanceFromOrigin)
	}
	if !l.IsNaN() {
		t.Errorf("point on line %v of a line without a normal should be NaN", l.PointOnLine)
	}
}

func TestNewInvalid(t *testing.T) {
	cl := New(1, 1, 2)
	if k := cl.Kind(); k != InvalidKind {
		t.Fatalf("got kind %v, want %v", k, InvalidKind)
	}
	if d := cl.Discriminant(); d != -1 {
		t.Errorf("got discriminant %v, want -1", d)
	}
	if _, ok := cl.Circle(); ok {
		t.Error("invalid cline reported a circle")
	}
	if _, ok := cl.Point(); ok {
		t.Error("invalid cline reported a point")
	}
	if _, ok := cl.Line(); ok {
		t.Error("invalid cline reported a line")
	}
	if cl.PassesThrough(0) {
		t.Error("invalid cline shouldn't pass through anything")
	}
}

func TestCoefficients(t *testing.T) {
	cl := New(1.5, 2-3i, -4)
	if cl.C() != 1.5 || cl.Alpha() != 2-3i || cl.D() != -4 {
		t.Errorf("got coefficients (%v, %v, %v), want (1.5, (2-3i), -4)", cl.C(), cl.Alpha(), cl.D())
	}
	if s := cl.Sources(); s != nil {
		t.Errorf("got sources %v for a cline built from coefficients", s)
	}
}

func TestSourcesCopy(t *testing.T) {
	cl := FromThreePoints(0, 1, 1i)
	s := cl.Sources()
	s[0] = 42
	diff(t, []complex128{0, 1, 1i}, cl.Sources())
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		CircleKind:  "Circle",
		LineKind:    "Line",
		PointKind:   "Point",
		InvalidKind: "Invalid",
		0:           "Kind(0)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
