package mathexpr

import (
	"math"
	"strings"
	"testing"
)

func TestCompileTreeErrors(t *testing.T) {
	one := &Node{Kind: NodeConst, Value: 1}
	cases := []struct {
		name string
		n    *Node
		msg  string
	}{
		{"nil", nil, "missing node"},
		{"none", &Node{Kind: NodeNone}, "invalid node kind"},
		{"kind", &Node{Kind: numNodeKinds + 1}, "invalid node kind"},
		{"param", &Node{Kind: NodeParam, Index: 1}, "out of range"},
		{"param-neg", &Node{Kind: NodeParam, Index: -1}, "out of range"},
		{"field", &Node{Kind: NodeField, Name: "k"}, "no module"},
		{"field-missing", &Node{Kind: NodeField, Name: "q", Module: testmod}, "no constant"},
		{"call-nil", &Node{Kind: NodeCall, Name: "f", Left: one}, "not callable"},
		{"call-dyadic", &Node{Kind: NodeCall, Name: "two", Fn: Dyadic(math.Max), Left: one}, "not callable"},
		{"call-noarg", &Node{Kind: NodeCall, Name: "one", Fn: Monadic(math.Abs)}, "missing node"},
		{"neg", &Node{Kind: NodeNeg}, "missing node"},
		{"add-right", &Node{Kind: NodeAdd, Left: one}, "missing node"},
		{"nested", &Node{Kind: NodeMul, Left: one, Right: &Node{Kind: NodeNeg, Left: &Node{Kind: NodeNone}}}, "None node"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, b := range []Backend{Interpreter{}, Precise{}} {
				f, err := b.Compile(c.n, []string{"x"})
				if f != nil {
					t.Errorf("%T compiled a bad tree", b)
				}
				terr, ok := err.(*TreeError)
				if !ok {
					t.Fatalf("%T: want TreeError, got %#v", b, err)
				}
				if !strings.Contains(terr.Error(), c.msg) {
					t.Errorf("%T: error %q doesn't contain %q", b, terr.Error(), c.msg)
				}
			}
		})
	}
}

func TestCompileHandBuilt(t *testing.T) {
	// Trees need not come from the parser.
	n := &Node{
		Kind: NodeSub,
		Left: &Node{
			Kind:   NodeCall,
			Name:   "one",
			Fn:     Monadic(func(x float64) float64 { return 10 * x }),
			Module: testmod,
			Left:   &Node{Kind: NodeParam, Index: 1},
		},
		Right: &Node{Kind: NodeField, Name: "K", Module: testmod},
	}
	for _, b := range []Backend{Interpreter{}, Precise{}} {
		f, err := b.Compile(n, []string{"a", "b"})
		if err != nil {
			t.Fatalf("%T: %v", b, err)
		}
		if r := f(100, 2); r != 13 {
			t.Errorf("%T: want 13, got %v", b, r)
		}
	}
}

func TestFieldsBoundAtCompile(t *testing.T) {
	m := NewTable("m").SetField("k", 1)
	n := &Node{Kind: NodeField, Name: "k", Module: m}
	f, err := Interpreter{}.Compile(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	m.SetField("k", 2)
	if r := f(); r != 1 {
		t.Errorf("want 1, got %v", r)
	}
}

func TestCheckArgs(t *testing.T) {
	defer func() {
		r := recover()
		s, ok := r.(string)
		if !ok || !strings.Contains(s, "2 parameters called with 1 arguments") {
			t.Errorf("wrong panic %#v", r)
		}
	}()
	checkArgs(2, []float64{1})
}
