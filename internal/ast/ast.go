// Package ast defines the syntax tree produced by the parser.
package ast

import (
	"strconv"
	"strings"

	"github.com/CrimsonDemon567/lumo/internal/lexer"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	Number Kind = iota
	Float
	String
	Ident
	Paren
	Unary
	Binary
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Float:
		return "Float"
	case String:
		return "String"
	case Ident:
		return "Ident"
	case Paren:
		return "Paren"
	case Unary:
		return "Unary"
	case Binary:
		return "Binary"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is a syntax tree node. Leaves have no children, Paren and Unary
// have one, Binary has two (left, right). A node owns its children.
// Pos is the start of a leaf, the opening paren of a Paren, or the
// operator of a Unary or Binary node.
type Node struct {
	Kind     Kind
	Int      int64
	Float    float64
	Str      string          // string literal value or identifier name
	Op       lexer.TokenType // operator of Unary and Binary nodes
	Pos      lexer.Position
	Children []Node
}

func Num(v int64) Node { return Node{Kind: Number, Int: v} }
func Flt(v float64) Node { return Node{Kind: Float, Float: v} }
func Str(s string) Node { return Node{Kind: String, Str: s} }
func Id(name string) Node { return Node{Kind: Ident, Str: name} }
func Group(inner Node) Node { return Node{Kind: Paren, Children: []Node{inner}} }
func Un(op lexer.TokenType, operand Node) Node {
	return Node{Kind: Unary, Op: op, Children: []Node{operand}}
}
func Bin(op lexer.TokenType, left, right Node) Node {
	return Node{Kind: Binary, Op: op, Children: []Node{left, right}}
}

// Equal reports whether n and o have the same shape and values.
// Positions are ignored. Trees of any height are compared without
// recursion.
func (n Node) Equal(o Node) bool {
	type pair struct{ a, b *Node }
	stack := []pair{{&n, &o}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !sameValue(p.a, p.b) {
			return false
		}
		for i := range p.a.Children {
			stack = append(stack, pair{&p.a.Children[i], &p.b.Children[i]})
		}
	}
	return true
}

func sameValue(n, o *Node) bool {
	if n.Kind != o.Kind || n.Op != o.Op || len(n.Children) != len(o.Children) {
		return false
	}
	switch n.Kind {
	case Number:
		return n.Int == o.Int
	case Float:
		return n.Float == o.Float
	case String, Ident:
		return n.Str == o.Str
	}
	return true
}

// String renders the tree as an S-expression, e.g. (* (paren (+ 1 2)) 3).
func (n Node) String() string {
	var sb strings.Builder
	// Each entry is either a node still to print or a literal suffix.
	type item struct {
		node *Node
		text string
	}
	stack := []item{{node: &n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.node == nil {
			sb.WriteString(it.text)
			continue
		}
		c := it.node
		switch c.Kind {
		case Number, Float, String, Ident:
			writeLeaf(&sb, c)
			continue
		}
		sb.WriteByte('(')
		if c.Kind == Paren {
			sb.WriteString("paren")
		} else {
			sb.WriteString(string(c.Op))
		}
		stack = append(stack, item{text: ")"})
		for i := len(c.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: &c.Children[i]}, item{text: " "})
		}
	}
	return sb.String()
}

func writeLeaf(sb *strings.Builder, n *Node) {
	switch n.Kind {
	case Number:
		sb.WriteString(strconv.FormatInt(n.Int, 10))
	case Float:
		s := strconv.FormatFloat(n.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		sb.WriteString(s)
	case String:
		sb.WriteString(strconv.Quote(n.Str))
	default:
		sb.WriteString(n.Str)
	}
}

// Depth returns the height of the tree; a leaf has depth 1.
func (n Node) Depth() int {
	type level struct {
		node  *Node
		depth int
	}
	height := 0
	stack := []level{{&n, 1}}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l.depth > height {
			height = l.depth
		}
		for i := range l.node.Children {
			stack = append(stack, level{&l.node.Children[i], l.depth + 1})
		}
	}
	return height
}
