package stepcalc

import (
	"strings"
)

// Node is a node in the syntax tree of an expression. Every Node is a
// *Literal, a *Unary, or a *Binary. Trees are never modified after parsing.
type Node interface {
	// String formats the node and its children with every term bracketed.
	String() string

	fmt(b *strings.Builder, square bool)
}

// Literal is a numeric constant.
type Literal struct {
	// Value is the number.
	Value Number
	// Text is the literal as it appeared in the source, if parsed.
	Text string
}

// Unary applies a unary operator to one operand.
type Unary struct {
	Op OperatorKind
	X  Node
}

// Binary applies a binary operator to two operands.
type Binary struct {
	Op          OperatorKind
	Left, Right Node
}

func (n *Literal) String() string { return nodeString(n) }
func (n *Unary) String() string   { return nodeString(n) }
func (n *Binary) String() string  { return nodeString(n) }

func nodeString(n Node) string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// brackets returns the bracket pair for a nesting level.
func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

// fmtchild formats a child node, or an invalid marker if it is missing.
func fmtchild(b *strings.Builder, n Node, square bool) {
	if n == nil {
		// Invalid nodes use invalid characters.
		b.WriteString("$#$")
		return
	}
	n.fmt(b, square)
}

func (n *Literal) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	if n.Text != "" {
		b.WriteString(n.Text)
	} else {
		b.WriteString(n.Value.String())
	}
	b.WriteByte(r)
}

func (n *Unary) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Op {
	case OpUnaryPlus:
		b.WriteByte('+')
	case OpUnaryMinus:
		b.WriteByte('-')
	default:
		b.WriteString("$" + n.Op.String() + "$")
	}
	fmtchild(b, n.X, !square)
}

func (n *Binary) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	defer b.WriteByte(r)
	fmtchild(b, n.Left, !square)
	if n.Op.IsBinary() {
		b.WriteString(" " + n.Op.Symbol() + " ")
	} else {
		b.WriteString(" $" + n.Op.String() + "$ ")
	}
	fmtchild(b, n.Right, !square)
}

// countOps counts the operator nodes in a tree.
func countOps(n Node) int {
	switch n := n.(type) {
	case *Unary:
		if n == nil {
			return 0
		}
		return 1 + countOps(n.X)
	case *Binary:
		if n == nil {
			return 0
		}
		return 1 + countOps(n.Left) + countOps(n.Right)
	default:
		return 0
	}
}
