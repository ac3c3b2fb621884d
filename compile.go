package mathexpr

import (
	"io"
	"strings"
)

// Expr is a parsed formula.
type Expr struct {
	// n is the root node of the formula.
	n *Node
	// params is the declared parameter list.
	params []string
	// backend compiles the formula.
	backend Backend
}

// Parse parses a formula so it can be compiled. The given options are applied
// in order. Configuration problems are reported as *ConfigError before any
// input is read.
func Parse(src io.RuneReader, opts ...Option) (*Expr, error) {
	c := newConfig(opts)
	if err := checkConfig(c.params, c.mods); err != nil {
		return nil, err
	}
	n, err := newParser(NewLexer(src), c.params, c.mods).parse()
	if err != nil {
		return nil, err
	}
	b := c.backend
	if b == nil {
		b = Interpreter{}
	}
	return &Expr{n: n, params: c.params, backend: b}, nil
}

// ParseString is a shortcut to parse a formula from a string.
func ParseString(src string, opts ...Option) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// Compile parses and compiles a formula.
func Compile(src string, opts ...Option) (Function, error) {
	return CompileReader(strings.NewReader(src), opts...)
}

// CompileReader parses and compiles a formula read from src.
func CompileReader(src io.RuneReader, opts ...Option) (Function, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return e.Compile()
}

// Eval is a shortcut to parse, compile, and evaluate a formula with no
// parameters.
func Eval(src string, opts ...Option) (float64, error) {
	f, err := Compile(src, opts...)
	if err != nil {
		return 0, err
	}
	return f(), nil
}

// Compile compiles the formula with the backend it was parsed with.
func (e *Expr) Compile() (Function, error) {
	return e.backend.Compile(e.n, e.Params())
}

// Root returns the root of the parse tree. The tree must not be modified.
func (e *Expr) Root() *Node {
	return e.n
}

// Params returns the declared parameter names.
func (e *Expr) Params() []string {
	return append([]string(nil), e.params...)
}

// String creates a string representation of the parsed formula with every
// subexpression parenthesized.
func (e *Expr) String() string {
	return e.n.String()
}
