package mathexpr

import (
	"sort"

	"golang.org/x/text/cases"
)

// Module is a read-only source of named constants and functions. Formulas
// refer to them by identifier. Lookups are case-insensitive. The parser only
// reads a module; it must not change while formulas using it are parsed or
// evaluated.
type Module interface {
	// Field returns the value of a named constant.
	Field(name string) (float64, bool)
	// Func returns a named function.
	Func(name string) (Func, bool)
}

// Func is a function of float64 arguments.
type Func interface {
	// CanCall returns whether the function can be called with n arguments.
	// The parser only calls functions of one argument; an identifier naming
	// a function for which CanCall(1) is false is a CallError.
	CanCall(n int) bool

	// Call evaluates the function. len(args) is a length for which CanCall
	// returned true. Call must not keep or modify args. Arguments outside
	// the function's domain give NaN rather than an error.
	Call(args []float64) float64
}

type monadic func(float64) float64

func (f monadic) CanCall(n int) bool {
	return n == 1
}

func (f monadic) Call(args []float64) float64 {
	return f(args[0])
}

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(x float64) float64) Func {
	return monadic(f)
}

type dyadic func(float64, float64) float64

func (f dyadic) CanCall(n int) bool {
	return n == 2
}

func (f dyadic) Call(args []float64) float64 {
	return f(args[0], args[1])
}

// Dyadic wraps a function of two variables into a Func. Formulas can't call
// it, but it can still be registered so that its name is reserved.
func Dyadic(f func(x, y float64) float64) Func {
	return dyadic(f)
}

// fold case-folds a name for case-insensitive comparison.
func fold(name string) string {
	// Casers carry state, so each use needs its own.
	return cases.Fold().String(name)
}

// Table is a Module backed by maps. The zero value is not usable; use
// NewTable. A Table must not be modified while it is in use by a parse or a
// compiled formula.
type Table struct {
	name   string
	fields map[string]float64
	funcs  map[string]Func
	// names maps folded names to their preferred spelling.
	names map[string]string
}

// NewTable creates an empty module.
func NewTable(name string) *Table {
	return &Table{
		name:   name,
		fields: make(map[string]float64),
		funcs:  make(map[string]Func),
		names:  make(map[string]string),
	}
}

// Name returns the module's name.
func (t *Table) Name() string {
	return t.name
}

// SetField defines a constant, replacing any constant or function of the same
// name. Returns t for chaining.
func (t *Table) SetField(name string, val float64) *Table {
	k := fold(name)
	delete(t.funcs, k)
	t.fields[k] = val
	t.names[k] = name
	return t
}

// SetFunc defines a function, replacing any constant or function of the same
// name. To remove a name, pass nil for fn. Returns t for chaining.
func (t *Table) SetFunc(name string, fn Func) *Table {
	k := fold(name)
	delete(t.fields, k)
	if fn == nil {
		delete(t.funcs, k)
		delete(t.names, k)
		return t
	}
	t.funcs[k] = fn
	t.names[k] = name
	return t
}

// Field implements Module.
func (t *Table) Field(name string) (float64, bool) {
	v, ok := t.fields[fold(name)]
	return v, ok
}

// Func implements Module.
func (t *Table) Func(name string) (Func, bool) {
	fn, ok := t.funcs[fold(name)]
	return fn, ok
}

// Names returns the names of all constants and functions in the module,
// spelled as they were defined, in sorted order.
func (t *Table) Names() []string {
	r := make([]string, 0, len(t.names))
	for _, v := range t.names {
		r = append(r, v)
	}
	sort.Strings(r)
	return r
}

var _ Module = (*Table)(nil)
