package mathexpr

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision Precise uses when its Prec is zero.
const DefaultPrec = 128

// Precise is a Backend that evaluates with arbitrary-precision intermediate
// results and rounds to float64 once, at the end. Module functions still
// receive and return float64.
//
// Whenever evaluation leaves the finite real numbers, e.g. a division by
// zero, an infinite or NaN argument, or a non-integer power of a negative
// number, the result is instead the same as Interpreter's.
type Precise struct {
	// Prec is the precision of intermediate results in bits.
	Prec uint
}

// Compile implements Backend.
func (b Precise) Compile(root *Node, params []string) (Function, error) {
	fallback, err := Interpreter{}.Compile(root, params)
	if err != nil {
		return nil, err
	}
	prec := b.Prec
	if prec == 0 {
		prec = DefaultPrec
	}
	n := len(params)
	return func(args ...float64) float64 {
		checkArgs(n, args)
		r, ok := evalBig(root, args, prec)
		if !ok {
			return fallback(args...)
		}
		f, _ := r.Float64()
		return f
	}, nil
}

// maxIntPow is the largest integer exponent evaluated by repeated
// multiplication.
const maxIntPow = 1 << 16

// evalBig evaluates a tree at the given precision. ok is false if the
// evaluation left the finite reals.
func evalBig(n *Node, args []float64, prec uint) (r *big.Float, ok bool) {
	defer func() {
		// big.Float panics with ErrNaN on operations like Inf-Inf. The checks
		// below should prevent them, but treat any that slip through as
		// leaving the reals.
		if e := recover(); e != nil {
			if _, nan := e.(big.ErrNaN); !nan {
				panic(e)
			}
			r, ok = nil, false
		}
	}()
	return bigNode(n, args, prec)
}

func bigNode(n *Node, args []float64, prec uint) (*big.Float, bool) {
	z := new(big.Float).SetPrec(prec)
	switch n.Kind {
	case NodeConst:
		if n.Name != "" {
			if _, _, err := z.Parse(n.Name, 10); err == nil && !z.IsInf() {
				return z, true
			}
		}
		return setFinite(z, n.Value)
	case NodeParam:
		return setFinite(z, args[n.Index])
	case NodeField:
		v, _ := n.Module.Field(n.Name)
		return setFinite(z, v)
	case NodeCall:
		x, ok := bigNode(n.Left, args, prec)
		if !ok {
			return nil, false
		}
		f, _ := x.Float64()
		return setFinite(z, n.Fn.Call([]float64{f}))
	case NodeNeg:
		x, ok := bigNode(n.Left, args, prec)
		if !ok {
			return nil, false
		}
		return z.Neg(x), true
	}

	x, ok := bigNode(n.Left, args, prec)
	if !ok {
		return nil, false
	}
	y, ok := bigNode(n.Right, args, prec)
	if !ok {
		return nil, false
	}
	switch n.Kind {
	case NodeAdd:
		z.Add(x, y)
	case NodeSub:
		z.Sub(x, y)
	case NodeMul:
		z.Mul(x, y)
	case NodeDiv:
		if y.Sign() == 0 {
			return nil, false
		}
		z.Quo(x, y)
	case NodeMod:
		return bigMod(z, x, y, prec)
	case NodePow:
		return bigPow(z, x, y, prec)
	default:
		return nil, false
	}
	if z.IsInf() {
		return nil, false
	}
	return z, true
}

// setFinite sets z to v if v is finite.
func setFinite(z *big.Float, v float64) (*big.Float, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return z.SetFloat64(v), true
}

// bigMod sets z to the remainder of x/y truncated toward zero, like math.Mod.
func bigMod(z, x, y *big.Float, prec uint) (*big.Float, bool) {
	if y.Sign() == 0 {
		return nil, false
	}
	q := new(big.Float).SetPrec(prec).Quo(x, y)
	if q.MantExp(nil) > int(prec) {
		// The quotient's integer part isn't exact at this precision.
		return nil, false
	}
	i, _ := q.Int(nil)
	q.SetInt(i)
	z.Mul(y, q)
	z.Sub(x, z)
	if z.Sign() == 0 {
		// math.Mod gives zero the sign of x.
		return nil, false
	}
	return z, true
}

// bigPow sets z to x^y. Integer exponents of modest size are computed by
// repeated squaring, so they work for any base. Other exponents need a
// positive base and a result within float64 range.
func bigPow(z, x, y *big.Float, prec uint) (*big.Float, bool) {
	if y.IsInt() {
		if e, acc := y.Int64(); acc == big.Exact && -maxIntPow <= e && e <= maxIntPow {
			return bigIntPow(z, x, e, prec)
		}
	}
	if x.Sign() <= 0 {
		return nil, false
	}
	xf, _ := x.Float64()
	yf, _ := y.Float64()
	if math.Abs(yf*math.Log2(xf)) > 2048 {
		// Overflows or underflows float64 anyway.
		return nil, false
	}
	bigfloat.Pow(z, x, y)
	if z.IsInf() {
		return nil, false
	}
	return z, true
}

func bigIntPow(z, x *big.Float, e int64, prec uint) (*big.Float, bool) {
	if e < 0 && x.Sign() == 0 {
		return nil, false
	}
	neg := e < 0
	if neg {
		e = -e
	}
	b := new(big.Float).SetPrec(prec).Set(x)
	z.SetInt64(1)
	for e > 0 {
		if e&1 != 0 {
			z.Mul(z, b)
		}
		e >>= 1
		if e > 0 {
			b.Mul(b, b)
		}
	}
	if neg {
		z.Quo(new(big.Float).SetPrec(prec).SetInt64(1), z)
	}
	if z.IsInf() || z.Sign() == 0 && x.Sign() != 0 {
		// Over- or underflowed the exponent range.
		return nil, false
	}
	return z, true
}
