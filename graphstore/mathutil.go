package graphstore

import "math"

// logRatio returns ln(a/b), or -Inf/+Inf/NaN per the usual IEEE rules when
// a or b is zero — callers (the sampler) treat any non-finite result as a
// rejection rather than special-casing it here (spec §4.3).
func logRatio(a, b float64) float64 {
	return math.Log(a) - math.Log(b)
}
