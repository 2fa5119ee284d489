// Package ast defines the regular-expression syntax tree consumed by the compiler.
//
// The tree is immutable and built from a closed set of variants: Symbol, Concat,
// Or and Quantified. Every internal node owns its children exclusively, so the tree
// is acyclic and has no shared substructure.
package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Node is a regular-expression syntax tree node.
// The set of implementations is closed to this package.
type Node interface {
	fmt.Stringer
	node()
}

// Kind is the repetition kind of a Quantified node.
type Kind int

const (
	// Star matches zero or more occurrences.
	Star Kind = iota
	// Plus matches one or more occurrences.
	Plus
	// Optional matches zero or one occurrence.
	Optional
)

// String returns the notation keyword for the kind.
func (k Kind) String() string {
	switch k {
	case Star:
		return "star"
	case Plus:
		return "plus"
	case Optional:
		return "opt"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Symbol matches exactly one occurrence of Char.
type Symbol struct {
	Char rune
}

// Concat matches Left immediately followed by Right.
type Concat struct {
	Left, Right Node
}

// Or matches either Left or Right.
type Or struct {
	Left, Right Node
}

// Quantified repeats Inner according to Kind.
type Quantified struct {
	Kind  Kind
	Inner Node
}

func (Symbol) node()     {}
func (Concat) node()     {}
func (Or) node()         {}
func (Quantified) node() {}

func (s Symbol) String() string { return QuoteSymbol(s.Char) }

// QuoteSymbol renders c as a Go rune literal. Invalid runes, which have no literal,
// render as a \U escape so they are never confused with utf8.RuneError.
func QuoteSymbol(c rune) string {
	if !utf8.ValidRune(c) {
		return fmt.Sprintf(`'\U%08x'`, uint32(c))
	}
	return strconv.QuoteRune(c)
}

func (c Concat) String() string { return "(concat " + c.Left.String() + " " + c.Right.String() + ")" }

func (o Or) String() string { return "(or " + o.Left.String() + " " + o.Right.String() + ")" }

func (q Quantified) String() string { return "(" + q.Kind.String() + " " + q.Inner.String() + ")" }

// Sym returns a Symbol node for c.
func Sym(c rune) Symbol { return Symbol{Char: c} }

// Repeat wraps inner in a Quantified node of the given kind.
func Repeat(kind Kind, inner Node) Quantified { return Quantified{Kind: kind, Inner: inner} }

// Sequence left-folds nodes into nested Concat nodes.
// It panics when nodes is empty.
func Sequence(nodes ...Node) Node {
	return fold(nodes, func(l, r Node) Node { return Concat{Left: l, Right: r} })
}

// Alternation left-folds nodes into nested Or nodes.
// It panics when nodes is empty.
func Alternation(nodes ...Node) Node {
	return fold(nodes, func(l, r Node) Node { return Or{Left: l, Right: r} })
}

// Literal returns the concatenation of the runes of s.
// It panics when s is empty, since the tree has no empty-string variant.
func Literal(s string) Node {
	runes := []rune(s)
	nodes := make([]Node, len(runes))
	for i, r := range runes {
		nodes[i] = Sym(r)
	}
	return Sequence(nodes...)
}

func fold(nodes []Node, join func(l, r Node) Node) Node {
	if len(nodes) == 0 {
		panic("ast: fold of zero nodes")
	}
	acc := nodes[0]
	for _, n := range nodes[1:] {
		acc = join(acc, n)
	}
	return acc
}

// Walk calls fn for n and every descendant in pre-order, left child first.
func Walk(n Node, fn func(Node)) {
	fn(n)
	switch v := n.(type) {
	case Concat:
		Walk(v.Left, fn)
		Walk(v.Right, fn)
	case Or:
		Walk(v.Left, fn)
		Walk(v.Right, fn)
	case Quantified:
		Walk(v.Inner, fn)
	}
}

// Alphabet returns the distinct symbols used by n in ascending order.
func Alphabet(n Node) []rune {
	var out []rune
	Walk(n, func(n Node) {
		if s, ok := n.(Symbol); ok && !slices.Contains(out, s.Char) {
			out = append(out, s.Char)
		}
	})
	slices.Sort(out)
	return out
}

// Describe renders n as an indented tree, one node per line.
func Describe(n Node) string {
	var b strings.Builder
	describe(&b, n, 0)
	return b.String()
}

func describe(b *strings.Builder, n Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	switch v := n.(type) {
	case Symbol:
		fmt.Fprintf(b, "Symbol %s\n", v)
	case Concat:
		b.WriteString("Concat\n")
		describe(b, v.Left, depth+1)
		describe(b, v.Right, depth+1)
	case Or:
		b.WriteString("Or\n")
		describe(b, v.Left, depth+1)
		describe(b, v.Right, depth+1)
	case Quantified:
		fmt.Fprintf(b, "Quantified %s\n", v.Kind)
		describe(b, v.Inner, depth+1)
	}
}
