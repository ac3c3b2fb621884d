package mathexpr_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/mathexpr"
)

func FuzzPrecise(f *testing.F) {
	f.Add("0.1 + 0.2")
	f.Add("x^y % z")
	f.Add("(-x)^0.5")
	f.Fuzz(func(t *testing.T, s string) {
		// Evaluation never panics, whatever the values.
		fn, err := mathexpr.Compile(s, mathexpr.Params("x", "y", "z"), mathexpr.WithMath(), mathexpr.WithBackend(mathexpr.Precise{Prec: 64}))
		if err != nil {
			return
		}
		fn(0, -1, math.Inf(1))
		fn(2.5, 1e300, math.NaN())
	})
}
