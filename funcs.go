package mathexpr

import (
	"math"
)

// mathModule is the standard math module. It is built once and never
// modified afterward.
var mathModule = newMathModule()

// Math returns the standard math module. It provides the constants pi, e,
// tau, phi, inf, and nan, and the usual elementary functions of one variable.
// Its two-variable functions (atan2, pow, max, min, ieeeremainder) reserve
// their names but can't be called from a formula.
func Math() Module {
	return mathModule
}

// MathNames returns the names defined by Math in sorted order.
func MathNames() []string {
	return mathModule.Names()
}

func newMathModule() *Table {
	t := NewTable("math")

	// constants
	t.SetField("PI", math.Pi)
	t.SetField("E", math.E)
	t.SetField("Tau", 2*math.Pi)
	t.SetField("Phi", math.Phi)
	t.SetField("Inf", math.Inf(1))
	t.SetField("NaN", math.NaN())

	for name, f := range map[string]func(float64) float64{
		"Abs":      math.Abs,
		"Acos":     math.Acos,
		"Acosh":    math.Acosh,
		"Asin":     math.Asin,
		"Asinh":    math.Asinh,
		"Atan":     math.Atan,
		"Atanh":    math.Atanh,
		"Cbrt":     math.Cbrt,
		"Ceiling":  math.Ceil,
		"Ceil":     math.Ceil,
		"Cos":      math.Cos,
		"Cosh":     math.Cosh,
		"Exp":      math.Exp,
		"Floor":    math.Floor,
		"Log":      math.Log,
		"Ln":       math.Log,
		"Log10":    math.Log10,
		"Log2":     math.Log2,
		"Round":    math.RoundToEven,
		"Sign":     sign,
		"Sin":      math.Sin,
		"Sinh":     math.Sinh,
		"Sqrt":     math.Sqrt,
		"Tan":      math.Tan,
		"Tanh":     math.Tanh,
		"Truncate": math.Trunc,
		"Trunc":    math.Trunc,
	} {
		t.SetFunc(name, Monadic(f))
	}

	for name, f := range map[string]func(float64, float64) float64{
		"Atan2":         math.Atan2,
		"Pow":           math.Pow,
		"Max":           math.Max,
		"Min":           math.Min,
		"IEEERemainder": math.Remainder,
	} {
		t.SetFunc(name, Dyadic(f))
	}
	return t
}

// sign returns -1, 0, or 1 according to the sign of x, or NaN if x is NaN.
func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		// Preserves NaN and signed zero.
		return x
	}
}
