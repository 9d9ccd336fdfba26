package cli

import (
	"fmt"
	"strconv"
	"strings"

	"honnef.co/go/cline"
)

// parsePoint parses a point given as a complex literal (1+2i, 1+2j,
// (1+2j)) or as a real pair (1,2 or (1,2)).
func parsePoint(s string) (complex128, error) {
	in := strings.TrimSpace(s)
	if x, y, ok := strings.Cut(strings.Trim(in, "()"), ","); ok {
		re, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid point %q: %w", s, err)
		}
		im, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid point %q: %w", s, err)
		}
		return cline.Pt(re, im).Complex(), nil
	}

	// Accept the j suffix for the imaginary unit.
	if base, ok := strings.CutSuffix(in, ")"); ok {
		if b, ok := strings.CutSuffix(base, "j"); ok {
			in = b + "i)"
		}
	} else if b, ok := strings.CutSuffix(in, "j"); ok {
		in = b + "i"
	}

	z, err := strconv.ParseComplex(in, 128)
	if err != nil {
		return 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return z, nil
}

func parsePoints(args []string) ([]complex128, error) {
	zs := make([]complex128, len(args))
	for i, arg := range args {
		z, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		zs[i] = z
	}
	return zs, nil
}
