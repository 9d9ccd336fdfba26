package cline

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal digits used by [Cline.String].
const DefaultPrecision = 4

func (cl Cline) String() string {
	return cl.Format(DefaultPrecision)
}

// Format returns a multi-line description of the cline's equation and of
// the geometric object it describes, with numbers rounded to precision
// decimal digits.
//
// Numbers are rounded half to even on their exact binary value. Integral
// results are printed without a fractional part, and complex numbers are
// printed as re, re+imj or re-imj.
func (cl Cline) Format(precision int) string {
	num := func(x float64) string { return formatFloat(x, precision) }
	cpx := func(z complex128) string { return formatComplex(z, precision) }

	var sb strings.Builder
	fmt.Fprintf(&sb, "A cline with equation: %s·|z|² + %s·z + %s·z\u0304 + %s = 0\n",
		num(cl.c), cpx(cl.alpha), cpx(cmplx.Conj(cl.alpha)), num(cl.d))
	fmt.Fprintf(&sb, "Discriminant: |alpha|^2-c*d = %s\n", num(cl.disc))
	sb.WriteString("The cline describes: ")

	switch cl.kind {
	case CircleKind:
		fmt.Fprintf(&sb, "a circle with center %s and radius %s", cpx(cl.circle.Center), num(cl.circle.Radius))
	case PointKind:
		fmt.Fprintf(&sb, "a point at %s", cpx(cl.point))
	case LineKind:
		l := cl.line
		a, b := num(l.A), num(l.B)
		dir := cpx(l.Direction)
		sb.WriteString("a line with the following properties:\n")
		fmt.Fprintf(&sb, "  1. Cartesian Form: %sx - %sy = %s where alpha = %s + %si\n", a, b, num(-cl.d/2), a, b)
		fmt.Fprintf(&sb, "  2. Normal Vector: %s\n", cpx(l.Normal))
		fmt.Fprintf(&sb, "  3. Direction Vector: %s (perpendicular to normal)\n", dir)
		fmt.Fprintf(&sb, "  4. Distance from Origin: %s\n", num(l.DistanceFromOrigin))
		fmt.Fprintf(&sb, "  5. Parametric Form: z(t) = %s + t·%s", cpx(l.PointOnLine), dir)
	default:
		sb.WriteString("not a valid geometric object (discriminant < 0)")
	}
	return sb.String()
}

// Summary returns a one-line description of the cline, suitable as a
// title.
func (cl Cline) Summary(precision int) string {
	switch cl.kind {
	case CircleKind:
		return fmt.Sprintf("Circle: center=%s, radius=%s",
			formatComplex(cl.circle.Center, precision), formatFloat(cl.circle.Radius, precision))
	case PointKind:
		return fmt.Sprintf("Point: %s", formatComplex(cl.point, precision))
	case LineKind:
		return fmt.Sprintf("Line: normal=%s, distance=%s",
			formatComplex(cl.line.Normal, precision), formatFloat(cl.line.DistanceFromOrigin, precision))
	default:
		return "Invalid Cline"
	}
}

// round rounds x to precision decimal digits, half to even on the exact
// binary value of x.
func round(x float64, precision int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', precision, 64), 64)
	if err != nil {
		// Out of range after rounding; only possible for huge x.
		return x
	}
	return r
}

func formatFloat(x float64, precision int) string {
	return formatRounded(round(x, precision))
}

// formatRounded formats an already rounded number.
func formatRounded(r float64) string {
	switch {
	case math.IsNaN(r):
		return "nan"
	case math.IsInf(r, 1):
		return "inf"
	case math.IsInf(r, -1):
		return "-inf"
	case r == 0:
		// Also catches negative zero.
		return "0"
	case r == math.Trunc(r):
		return strconv.FormatFloat(r, 'f', 0, 64)
	case math.Abs(r) < 1e-4:
		return strconv.FormatFloat(r, 'e', -1, 64)
	default:
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
}

func formatComplex(z complex128, precision int) string {
	re := formatFloat(real(z), precision)
	im := round(imag(z), precision)
	switch {
	case im == 0:
		return re
	case im > 0 || math.IsNaN(im):
		return re + "+" + formatRounded(im) + "j"
	default:
		return re + formatRounded(im) + "j"
	}
}
