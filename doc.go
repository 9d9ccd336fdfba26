// Package cline represents circles, lines and points in the complex plane
// as a single kind of object, the cline.
//
// # The equation
//
// Every cline is the solution set of
//
//	c·|z|² + α·z + ᾱ·z̄ + d = 0
//
// where c and d are real and α is complex. Its discriminant |α|² − c·d
// determines what the equation describes:
//
//   - c = 0: a line, a·x − b·y + d/2 = 0 with α = a + ib ([LineKind])
//   - c ≠ 0 and a positive discriminant: a circle with center −ᾱ/c and
//     radius √(|α|² − c·d) / |c| ([CircleKind])
//   - c ≠ 0 and a zero discriminant: the single point −ᾱ/c ([PointKind])
//   - c ≠ 0 and a negative discriminant: nothing at all ([InvalidKind])
//
// All comparisons against zero use the tolerance [Epsilon].
//
// # Construction
//
// Clines can be built from their coefficients with [New], or from geometry
// with [FromThreePoints], [FromLine] and [FromCircle]. The geometric
// constructors accept points as complex128 or as [Point] values.
//
// Degenerate input is not an error. Three equal points make a point,
// three collinear points make a line, and coefficients with a negative
// discriminant make an invalid cline. Only [FromLine] and [FromCircle]
// return errors, for coincident points and non-positive radii
// respectively.
//
// # Accessing the result
//
// A cline's derived geometry depends on its kind. [Cline.Circle],
// [Cline.Point] and [Cline.Line] return the geometry together with a
// boolean that reports whether the cline is of that kind:
//
//	cl := cline.FromThreePoints(0, 1, 1i)
//	if c, ok := cl.Circle(); ok {
//		fmt.Println(c.Center, c.Radius)
//	}
//
// A cline is immutable and safe for concurrent use.
package cline
