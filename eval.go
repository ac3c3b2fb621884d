package mathexpr

import (
	"math"
	"strconv"
	"strings"
)

// Function is a compiled formula. Its arguments are the values of the
// declared parameters, in order. Calling it with the wrong number of
// arguments panics. A Function has no state, so it is safe to call
// concurrently.
type Function func(args ...float64) float64

// Backend turns a parse tree into a Function.
type Backend interface {
	// Compile creates a function evaluating root. params is the declared
	// parameter list whose indices root's NodeParam nodes refer to.
	Compile(root *Node, params []string) (Function, error)
}

// Interpreter is the default Backend. It evaluates with ordinary float64
// arithmetic, so division by zero, overflow, and domain errors produce
// infinities and NaNs rather than errors.
type Interpreter struct{}

// evalFn evaluates one subtree.
type evalFn func(args []float64) float64

// Compile implements Backend.
func (Interpreter) Compile(root *Node, params []string) (Function, error) {
	f, err := compileNode(root, len(params))
	if err != nil {
		return nil, err
	}
	n := len(params)
	return func(args ...float64) float64 {
		checkArgs(n, args)
		return f(args)
	}, nil
}

// checkArgs panics if a Function receives the wrong number of arguments.
func checkArgs(n int, args []float64) {
	if len(args) != n {
		panic("mathexpr: formula of " + strconv.Itoa(n) + " parameters called with " + strconv.Itoa(len(args)) + " arguments")
	}
}

// compileNode builds the evaluation closure for a subtree. Module constants
// are looked up once, here.
func compileNode(n *Node, nparams int) (evalFn, error) {
	if n == nil {
		return nil, &TreeError{Problem: "missing node"}
	}
	switch n.Kind {
	case NodeConst:
		v := n.Value
		return func([]float64) float64 { return v }, nil
	case NodeParam:
		i := n.Index
		if i < 0 || i >= nparams {
			return nil, &TreeError{Node: n, Problem: "parameter index " + strconv.Itoa(i) + " out of range"}
		}
		return func(args []float64) float64 { return args[i] }, nil
	case NodeField:
		if n.Module == nil {
			return nil, &TreeError{Node: n, Problem: "no module"}
		}
		v, ok := n.Module.Field(n.Name)
		if !ok {
			return nil, &TreeError{Node: n, Problem: "module has no constant " + strconv.Quote(n.Name)}
		}
		return func([]float64) float64 { return v }, nil
	case NodeCall:
		if n.Fn == nil || !n.Fn.CanCall(1) {
			return nil, &TreeError{Node: n, Problem: "function " + strconv.Quote(n.Name) + " is not callable with 1 argument"}
		}
		arg, err := compileNode(n.Left, nparams)
		if err != nil {
			return nil, err
		}
		if m, ok := n.Fn.(monadic); ok {
			return func(args []float64) float64 { return m(arg(args)) }, nil
		}
		fn := n.Fn
		return func(args []float64) float64 {
			return fn.Call([]float64{arg(args)})
		}, nil
	case NodeNeg:
		x, err := compileNode(n.Left, nparams)
		if err != nil {
			return nil, err
		}
		return func(args []float64) float64 { return -x(args) }, nil
	}

	op, ok := arith[n.Kind]
	if !ok {
		return nil, &TreeError{Node: n, Problem: "invalid node kind " + n.Kind.String()}
	}
	x, err := compileNode(n.Left, nparams)
	if err != nil {
		return nil, err
	}
	y, err := compileNode(n.Right, nparams)
	if err != nil {
		return nil, err
	}
	return func(args []float64) float64 { return op(x(args), y(args)) }, nil
}

// arith gives the float64 operation for each binary node kind.
var arith = map[NodeKind]func(x, y float64) float64{
	NodeAdd: func(x, y float64) float64 { return x + y },
	NodeSub: func(x, y float64) float64 { return x - y },
	NodeMul: func(x, y float64) float64 { return x * y },
	NodeDiv: func(x, y float64) float64 { return x / y },
	NodeMod: math.Mod,
	NodePow: math.Pow,
}

// TreeError is an error from a Backend given a malformed tree. Trees from the
// parser never cause it.
type TreeError struct {
	// Node is the malformed node, if there is one.
	Node *Node
	// Problem describes the malformation.
	Problem string
}

func (err *TreeError) Error() string {
	var b strings.Builder
	b.WriteString("malformed tree: ")
	b.WriteString(err.Problem)
	if err.Node != nil {
		b.WriteString(" in ")
		b.WriteString(err.Node.Kind.String())
		b.WriteString(" node")
	}
	return b.String()
}
