// Package nfa provides the arena-backed graph of a nondeterministic finite automaton.
//
// Nodes are addressed by NodeHandle, a stable index into the arena. Handles are never
// reused and stay valid for the lifetime of the arena. A Builder grows the arena during
// compilation and Finish seals it into an immutable NFA.
package nfa

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"unicode/utf8"
)

// NodeHandle identifies a node in the arena.
type NodeHandle int

// Label is the input consumed by a transition: either a single symbol or epsilon.
type Label struct {
	Symbol  rune
	Epsilon bool
}

// Epsilon is the label of a transition that consumes no input.
var Epsilon = Label{Epsilon: true}

// On returns the label consuming exactly c.
func On(c rune) Label { return Label{Symbol: c} }

// String renders the label: ε for epsilon, a quoted Go rune literal otherwise,
// so the symbol 'ε' and non-printing symbols stay distinct and on one line.
func (l Label) String() string {
	if l.Epsilon {
		return "ε"
	}
	if !utf8.ValidRune(l.Symbol) {
		return fmt.Sprintf(`'\U%08x'`, uint32(l.Symbol))
	}
	return strconv.QuoteRune(l.Symbol)
}

// Transition is an outgoing edge of a node.
type Transition struct {
	Label Label
	To    NodeHandle
}

type node struct {
	transitions []Transition
}

// Builder allocates nodes and appends transitions while an automaton is being built.
type Builder struct {
	nodes  []node
	sealed bool
}

// NewBuilder returns an empty arena.
func NewBuilder() *Builder {
	return &Builder{}
}

// AllocateNode appends a fresh node without transitions and returns its handle.
func (b *Builder) AllocateNode() NodeHandle {
	b.mustBeOpen()
	b.nodes = append(b.nodes, node{})
	return NodeHandle(len(b.nodes) - 1)
}

// AddTransition appends an edge from -> to labeled with label.
// Transitions keep their insertion order.
func (b *Builder) AddTransition(from NodeHandle, label Label, to NodeHandle) {
	b.mustBeOpen()
	b.check(from)
	b.check(to)
	b.nodes[from].transitions = append(b.nodes[from].transitions, Transition{Label: label, To: to})
}

// TransitionsOf returns the outgoing transitions of h in insertion order.
// The returned slice is a view into the arena and must not be modified.
func (b *Builder) TransitionsOf(h NodeHandle) []Transition {
	b.check(h)
	return b.nodes[h].transitions
}

// NumNodes returns the number of allocated nodes.
func (b *Builder) NumNodes() int { return len(b.nodes) }

// Finish seals the arena into an NFA. The builder must not be used afterwards.
func (b *Builder) Finish(start, accept NodeHandle) *NFA {
	b.mustBeOpen()
	b.check(start)
	b.check(accept)
	b.sealed = true
	return &NFA{start: start, accept: accept, nodes: b.nodes}
}

func (b *Builder) mustBeOpen() {
	if b.sealed {
		panic("nfa: builder used after Finish")
	}
}

func (b *Builder) check(h NodeHandle) {
	if h < 0 || int(h) >= len(b.nodes) {
		panic(fmt.Sprintf("nfa: invalid node handle %d (arena has %d nodes)", h, len(b.nodes)))
	}
}

// NFA is a finished, immutable automaton with a single start and a single accepting node.
// It is safe for concurrent use.
type NFA struct {
	start  NodeHandle
	accept NodeHandle
	nodes  []node
}

// NodeInfo describes one node of a finished NFA.
type NodeInfo struct {
	Handle      NodeHandle
	Transitions []Transition
	Accepting   bool
}

// Start returns the start node.
func (n *NFA) Start() NodeHandle { return n.start }

// Accept returns the unique accepting node.
func (n *NFA) Accept() NodeHandle { return n.accept }

// NumNodes returns the number of nodes in the automaton.
func (n *NFA) NumNodes() int { return len(n.nodes) }

// IsAccepting reports whether h is the accepting node.
func (n *NFA) IsAccepting(h NodeHandle) bool { return h == n.accept }

// Transitions returns a copy of the outgoing transitions of h in insertion order.
func (n *NFA) Transitions(h NodeHandle) []Transition {
	return slices.Clone(n.nodes[h].transitions)
}

// Out iterates over the outgoing transitions of h without copying them.
func (n *NFA) Out(h NodeHandle) iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		for _, t := range n.nodes[h].transitions {
			if !yield(t) {
				return
			}
		}
	}
}

// Nodes iterates over every node in handle order.
func (n *NFA) Nodes() iter.Seq[NodeInfo] {
	return func(yield func(NodeInfo) bool) {
		for i := range n.nodes {
			h := NodeHandle(i)
			if !yield(NodeInfo{Handle: h, Transitions: n.Transitions(h), Accepting: n.IsAccepting(h)}) {
				return
			}
		}
	}
}
