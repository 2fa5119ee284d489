package thompson

import "github.com/KromDaniel/thompson/internal/nfa"

// Stats describes the shape of a compiled automaton.
type Stats = nfa.Stats

// Analyze compiles expr and returns the shape of its automaton without generating code.
// It returns an error if the expression does not parse.
//
// Example:
//
//	s, err := thompson.Analyze(`(concat (star 'a') 'b')`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.Nodes, s.Transitions) // 6 7
func Analyze(expr string) (*Stats, error) {
	n, err := CompileExpr(expr)
	if err != nil {
		return nil, err
	}
	s := n.Stats()
	return &s, nil
}
