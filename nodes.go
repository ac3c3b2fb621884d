package mathexpr

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of a formula. Nodes are never
// modified after the parser builds them.
type Node struct {
	Kind NodeKind

	// Value is the value of a NodeConst.
	Value float64
	// Index is the position of a NodeParam's parameter in the declared
	// parameter list.
	Index int
	// Name is the literal text of a NodeConst, or the name of a parameter,
	// field, or function as written in the formula.
	Name string
	// Module is the module providing a NodeField or NodeCall.
	Module Module
	// Fn is the function a NodeCall calls.
	Fn Func

	// Left is the operand of NodeNeg, the argument of NodeCall, or the left
	// operand of a binary node.
	Left  *Node
	Right *Node
}

// NodeKind identifies the variant of a Node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeConst // Value
	NodeParam // args[Index]
	NodeField // Module.Field(Name)
	NodeCall  // Fn(Left)

	NodeNeg // -Left
	NodeAdd // Left + Right
	NodeSub // Left - Right
	NodeMul // Left * Right
	NodeDiv // Left / Right
	NodeMod // Left % Right, truncated
	NodePow // Left ^ Right

	numNodeKinds
)

var nodeKindNames = [numNodeKinds]string{
	NodeNone:  "None",
	NodeConst: "Const",
	NodeParam: "Param",
	NodeField: "Field",
	NodeCall:  "Call",
	NodeNeg:   "Neg",
	NodeAdd:   "Add",
	NodeSub:   "Sub",
	NodeMul:   "Mul",
	NodeDiv:   "Div",
	NodeMod:   "Mod",
	NodePow:   "Pow",
}

func (k NodeKind) String() string {
	if k < 0 || k >= numNodeKinds {
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

// binops maps binary node kinds to their operators.
var binops = map[NodeKind]string{
	NodeAdd: " + ",
	NodeSub: " - ",
	NodeMul: " * ",
	NodeDiv: " / ",
	NodeMod: " % ",
	NodePow: " ^ ",
}

// String formats the tree with every subexpression parenthesized. The result
// parses to the same tree given the same parameters and modules.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.Kind {
	case NodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.Left != nil {
			n.Left.fmt(b)
		}
		b.WriteByte('#')
		if n.Right != nil {
			n.Right.fmt(b)
		}
		b.WriteByte('$')
	case NodeConst:
		if n.Name != "" {
			b.WriteString(n.Name)
		} else {
			b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
		}
	case NodeParam, NodeField:
		b.WriteString(n.Name)
	case NodeCall:
		b.WriteString(n.Name)
		n.Left.fmt(b)
	case NodeNeg:
		b.WriteByte('-')
		n.Left.fmt(b)
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodeMod, NodePow:
		n.Left.fmt(b)
		b.WriteString(binops[n.Kind])
		n.Right.fmt(b)
	default:
		panic("mathexpr: invalid node kind " + n.Kind.String() + " after writing " + b.String())
	}
}
