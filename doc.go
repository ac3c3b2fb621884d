// Package mathexpr compiles arithmetic formulas into float64 functions.
//
// The syntax of formulas is intended to be similar to math you'd write in
// your notes. "2x" and "2(x+1)" are multiplications. "sin x" calls sin on x,
// and so does "sin(x)", but "sin x y" is "sin(x) * y". "2^3^2" is "2^(3^2)".
// Identifiers are case-insensitive.
//
// Identifiers name either parameters, declared with Params, or constants and
// functions in modules, given with Modules. Math is the standard module:
//
//	f, err := mathexpr.Compile("2 sin(t) + PI^2", mathexpr.Params("t"), mathexpr.WithMath())
//	if err != nil {
//		// ...
//	}
//	y := f(0.5)
//
// Errors in a formula are fatal to the parse and implement InputError, which
// gives the position of the offending token. Arithmetic never fails: division
// by zero, overflow, and functions outside their domains give infinities and
// NaNs.
package mathexpr
