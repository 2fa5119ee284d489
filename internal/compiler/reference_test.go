package compiler

import "github.com/KromDaniel/thompson/internal/ast"

// matchesReference decides membership directly from the tree by trying every split.
func matchesReference(n ast.Node, in []rune) bool {
	switch v := n.(type) {
	case ast.Symbol:
		return len(in) == 1 && in[0] == v.Char
	case ast.Concat:
		for i := 0; i <= len(in); i++ {
			if matchesReference(v.Left, in[:i]) && matchesReference(v.Right, in[i:]) {
				return true
			}
		}
		return false
	case ast.Or:
		return matchesReference(v.Left, in) || matchesReference(v.Right, in)
	case ast.Quantified:
		switch v.Kind {
		case ast.Optional:
			return len(in) == 0 || matchesReference(v.Inner, in)
		case ast.Plus:
			return repeats(v.Inner, in, 1)
		default:
			return repeats(v.Inner, in, 0)
		}
	}
	panic("unreachable")
}

// repeats reports whether in splits into at least min non-empty pieces accepted by
// inner. Empty pieces never help, except to satisfy min when inner accepts "".
func repeats(inner ast.Node, in []rune, min int) bool {
	if len(in) == 0 {
		return min == 0 || matchesReference(inner, nil)
	}
	for i := 1; i <= len(in); i++ {
		if matchesReference(inner, in[:i]) && repeats(inner, in[i:], max(min-1, 0)) {
			return true
		}
	}
	return false
}

// words returns every string over alphabet of length at most n, including the empty one.
func words(alphabet string, n int) [][]rune {
	out := [][]rune{{}}
	frontier := [][]rune{{}}
	for l := 0; l < n; l++ {
		var grown [][]rune
		for _, w := range frontier {
			for _, r := range alphabet {
				next := append(append([]rune{}, w...), r)
				grown = append(grown, next)
			}
		}
		out = append(out, grown...)
		frontier = grown
	}
	return out
}
