package cline

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats and complex numbers within an absolute margin,
// treating NaNs as equal.
func approx(margin float64) cmp.Options {
	return cmp.Options{
		cmpopts.EquateApprox(0, margin),
		cmpopts.EquateNaNs(),
		cmp.Comparer(func(x, y complex128) bool {
			if cmplx.IsNaN(x) || cmplx.IsNaN(y) {
				return cmplx.IsNaN(x) && cmplx.IsNaN(y)
			}
			if x == y {
				return true
			}
			return cmplx.Abs(x-y) <= margin
		}),
	}
}

// parallel reports whether the plane vectors z and w are parallel and
// non-zero.
func parallel(z, w complex128) bool {
	if z == 0 || w == 0 {
		return false
	}
	cross := real(z)*imag(w) - imag(z)*real(w)
	return math.Abs(cross) <= 1e-9*cmplx.Abs(z)*cmplx.Abs(w)
}
