package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/mathexpr"
)

// session holds the parameters and modules formulas are evaluated with.
type session struct {
	// names and values are the declared parameters and their current values.
	names  []string
	values []float64
	// tables are loaded constant modules, searched before Math.
	tables  []mathexpr.Module
	backend mathexpr.Backend
	// words are the names defined by modules, for completion.
	words []string
	verb  string
}

func newSession(precise bool, prec uint, verb string) *session {
	s := session{
		backend: mathexpr.Interpreter{},
		words:   mathexpr.MathNames(),
		verb:    verb,
	}
	if precise {
		s.backend = mathexpr.Precise{Prec: prec}
	}
	return &s
}

// load adds a module of constants from a YAML file.
func (s *session) load(path string) error {
	t, err := mathexpr.LoadTableFile(path)
	if err != nil {
		return err
	}
	s.tables = append(s.tables, t)
	s.words = append(s.words, t.Names()...)
	return nil
}

func (s *session) options(extra ...string) []mathexpr.Option {
	return []mathexpr.Option{
		mathexpr.Params(s.names...),
		mathexpr.Params(extra...),
		mathexpr.Modules(s.tables...),
		mathexpr.WithMath(),
		mathexpr.WithBackend(s.backend),
	}
}

// eval evaluates a formula with the current parameter values.
func (s *session) eval(src string) (float64, *mathexpr.Expr, error) {
	e, err := mathexpr.ParseString(src, s.options()...)
	if err != nil {
		return 0, nil, err
	}
	f, err := e.Compile()
	if err != nil {
		return 0, nil, err
	}
	return f(s.values...), e, nil
}

// set evaluates src and assigns the result to a parameter, declaring it if
// it is new. src can use parameters declared before.
func (s *session) set(name, src string) error {
	v, _, err := s.eval(src)
	if err != nil {
		return err
	}
	// An existing parameter parses as itself.
	if e, err := mathexpr.ParseString(name, s.options()...); err == nil {
		if n := e.Root(); n.Kind == mathexpr.NodeParam && n.Name == name {
			s.values[n.Index] = v
			return nil
		}
	}
	if _, err := mathexpr.ParseString("0", s.options(name)...); err != nil {
		return err
	}
	s.names = append(s.names, name)
	s.values = append(s.values, v)
	return nil
}

// print evaluates one formula and writes the result.
func (s *session) print(out io.Writer, src string, echo bool) error {
	r, e, err := s.eval(src)
	if err != nil {
		return err
	}
	if echo {
		fmt.Fprintf(out, "%v : ", e)
	}
	fmt.Fprintf(out, s.verb+"\n", r)
	return nil
}

// splitParam splits a name=value parameter definition.
func splitParam(def string) (name, val string, err error) {
	name, val, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", errors.Errorf(`parameter definitions must be "name=value", not %q`, def)
	}
	return name, strings.TrimSpace(val), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
