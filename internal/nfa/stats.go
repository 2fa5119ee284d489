package nfa

import "slices"

// Stats summarizes the shape of an automaton.
type Stats struct {
	Nodes       int
	Transitions int
	Epsilons    int
	// Alphabet holds the distinct consumed symbols in ascending order.
	Alphabet []rune
}

// Stats counts nodes and transitions and collects the symbol alphabet.
func (n *NFA) Stats() Stats {
	s := Stats{Nodes: len(n.nodes)}
	for _, nd := range n.nodes {
		for _, t := range nd.transitions {
			s.Transitions++
			if t.Label.Epsilon {
				s.Epsilons++
				continue
			}
			if !slices.Contains(s.Alphabet, t.Label.Symbol) {
				s.Alphabet = append(s.Alphabet, t.Label.Symbol)
			}
		}
	}
	slices.Sort(s.Alphabet)
	return s
}
