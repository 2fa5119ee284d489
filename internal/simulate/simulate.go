// Package simulate decides NFA membership by epsilon-closure simulation.
//
// All state lives in the call, so any number of goroutines may simulate the same
// automaton at once.
package simulate

import (
	"slices"

	"github.com/KromDaniel/thompson/internal/nfa"
)

// stateSet is an insertion-ordered set of node handles.
// dense doubles as the worklist while computing a closure.
type stateSet struct {
	dense  []nfa.NodeHandle
	member []bool
}

func newStateSet(size int) *stateSet {
	return &stateSet{
		dense:  make([]nfa.NodeHandle, 0, size),
		member: make([]bool, size),
	}
}

func (s *stateSet) add(h nfa.NodeHandle) {
	if s.member[h] {
		return
	}
	s.member[h] = true
	s.dense = append(s.dense, h)
}

func (s *stateSet) has(h nfa.NodeHandle) bool { return s.member[h] }

func (s *stateSet) empty() bool { return len(s.dense) == 0 }

func (s *stateSet) clear() {
	for _, h := range s.dense {
		s.member[h] = false
	}
	s.dense = s.dense[:0]
}

func (s *stateSet) sorted() []nfa.NodeHandle {
	out := slices.Clone(s.dense)
	slices.Sort(out)
	return out
}

// closeOver extends s with every node reachable by epsilon transitions.
// Each node enters dense at most once, so epsilon cycles terminate.
func (s *stateSet) closeOver(n *nfa.NFA) {
	for i := 0; i < len(s.dense); i++ {
		for t := range n.Out(s.dense[i]) {
			if t.Label.Epsilon {
				s.add(t.To)
			}
		}
	}
}

// Closure returns the epsilon-closure of seeds in ascending handle order.
func Closure(n *nfa.NFA, seeds ...nfa.NodeHandle) []nfa.NodeHandle {
	s := newStateSet(n.NumNodes())
	for _, h := range seeds {
		s.add(h)
	}
	s.closeOver(n)
	return s.sorted()
}

// run is one in-progress simulation.
type run struct {
	n       *nfa.NFA
	current *stateSet
	next    *stateSet
}

func start(n *nfa.NFA) *run {
	r := &run{
		n:       n,
		current: newStateSet(n.NumNodes()),
		next:    newStateSet(n.NumNodes()),
	}
	r.current.add(n.Start())
	r.current.closeOver(n)
	return r
}

// feed consumes c and reports whether any node is still active.
func (r *run) feed(c rune) bool {
	r.next.clear()
	for _, h := range r.current.dense {
		for t := range r.n.Out(h) {
			if !t.Label.Epsilon && t.Label.Symbol == c {
				r.next.add(t.To)
			}
		}
	}
	r.next.closeOver(r.n)
	r.current, r.next = r.next, r.current
	return !r.current.empty()
}

func (r *run) accepted() bool { return r.current.has(r.n.Accept()) }

// Accepts reports whether n accepts exactly the symbol sequence input.
func Accepts(n *nfa.NFA, input []rune) bool {
	r := start(n)
	for _, c := range input {
		if !r.feed(c) {
			return false
		}
	}
	return r.accepted()
}

// AcceptsString reports whether n accepts the runes of s.
func AcceptsString(n *nfa.NFA, s string) bool {
	r := start(n)
	for _, c := range s {
		if !r.feed(c) {
			return false
		}
	}
	return r.accepted()
}

// Step records the active nodes after a symbol was consumed.
// The first step of a trace has Consumed == nil and holds the start closure.
type Step struct {
	Consumed *rune
	Active   []nfa.NodeHandle
}

// Trace simulates n over s and returns the active set after each symbol.
// The trace stops early at the first empty active set.
func Trace(n *nfa.NFA, s string) (steps []Step, accepted bool) {
	r := start(n)
	steps = append(steps, Step{Active: r.current.sorted()})
	for _, c := range s {
		alive := r.feed(c)
		steps = append(steps, Step{Consumed: &c, Active: r.current.sorted()})
		if !alive {
			return steps, false
		}
	}
	return steps, r.accepted()
}
