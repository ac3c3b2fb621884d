package mathexpr_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/zephyrtronium/mathexpr"
)

func ExampleCompile() {
	f, err := mathexpr.Compile("2 sin(t) + PI^2", mathexpr.Params("t"), mathexpr.WithMath())
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", f(0))
	fmt.Printf("%.4f\n", f(0.5))
	// Output:
	// 9.8696
	// 10.8285
}

func ExampleParseString() {
	e, err := mathexpr.ParseString("sin x y + 2x^2", mathexpr.Params("x", "y"), mathexpr.WithMath())
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	// Output:
	// (((sin(x)) * (y)) + ((2) * ((x) ^ (2))))
}

func ExampleMonadic() {
	m := mathexpr.NewTable("stats").
		SetFunc("sigmoid", mathexpr.Monadic(func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })).
		SetField("z95", 1.959964)
	r, err := mathexpr.Eval("sigmoid 0 + z95", mathexpr.Modules(m))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.6f\n", r)
	// Output:
	// 2.459964
}

func ExampleLoadTable() {
	src := `
name: physics
constants:
  c: 299792458
`
	m, err := mathexpr.LoadTable(strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	r, err := mathexpr.Eval("c / 1000", mathexpr.Modules(m))
	fmt.Println(r, err)
	// Output:
	// 299792.458 <nil>
}

func ExampleInputError() {
	_, err := mathexpr.Compile("2 * (x + 1", mathexpr.Params("x"))
	if ierr, ok := err.(mathexpr.InputError); ok {
		fmt.Println(ierr.Pos())
	}
	fmt.Println(err)
	// Output:
	// 10
	// 10: open bracket at 4 with no close bracket, found end of input
}
