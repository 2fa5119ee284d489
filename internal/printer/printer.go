// Package printer renders compiled automata as text or Graphviz DOT.
// It only depends on the read view of nfa.NFA.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KromDaniel/thompson/internal/nfa"
)

// Text renders one line per transition as "<from> -<label>> <to>" and flags the
// accepting node with "<n> [accept]". Symbols are quoted rune literals and epsilon is ε.
// The start node comes first, the remaining nodes follow in handle order.
func Text(n *nfa.NFA) string {
	var b strings.Builder
	writeNode(&b, n, n.Start())
	for info := range n.Nodes() {
		if info.Handle != n.Start() {
			writeNode(&b, n, info.Handle)
		}
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *nfa.NFA, h nfa.NodeHandle) {
	for t := range n.Out(h) {
		fmt.Fprintf(b, "%d -%s> %d\n", h, t.Label, t.To)
	}
	if n.IsAccepting(h) {
		fmt.Fprintf(b, "%d [accept]\n", h)
	}
}

// WriteText writes Text(n) to w.
func WriteText(w io.Writer, n *nfa.NFA) error {
	_, err := io.WriteString(w, Text(n))
	return err
}

// WriteDOT writes a Graphviz digraph of n to w.
func WriteDOT(w io.Writer, n *nfa.NFA) error {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    _start [shape=point];\n")
	fmt.Fprintf(&b, "    _start -> n%d;\n", n.Start())

	for info := range n.Nodes() {
		shape := "circle"
		if info.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    n%d [shape=%s, label=\"%d\"];\n", info.Handle, shape, info.Handle)
		for _, t := range info.Transitions {
			fmt.Fprintf(&b, "    n%d -> n%d [label=%s];\n", info.Handle, t.To, strconv.Quote(t.Label.String()))
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
