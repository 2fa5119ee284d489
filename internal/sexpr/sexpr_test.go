package sexpr

import (
	"errors"
	"testing"

	"github.com/KromDaniel/thompson/internal/ast"
)

func TestParse(t *testing.T) {
	a, b, c := ast.Sym('a'), ast.Sym('b'), ast.Sym('c')
	tests := []struct {
		name string
		src  string
		want ast.Node
	}{
		{"symbol", `'a'`, a},
		{"escaped quote", `'\''`, ast.Sym('\'')},
		{"paren symbol", `'('`, ast.Sym('(')},
		{"unicode", `'ж'`, ast.Sym('ж')},
		{"escape", `'\n'`, ast.Sym('\n')},
		{"string", `"abc"`, ast.Sequence(a, b, c)},
		{"single char string", `"a"`, a},
		{"concat", `(concat 'a' 'b')`, ast.Concat{Left: a, Right: b}},
		{"n-ary concat", `(concat 'a' 'b' 'c')`, ast.Concat{Left: ast.Concat{Left: a, Right: b}, Right: c}},
		{"or", `(or 'a' 'b' 'c')`, ast.Or{Left: ast.Or{Left: a, Right: b}, Right: c}},
		{"star", `(star 'a')`, ast.Repeat(ast.Star, a)},
		{"plus", `(plus "ab")`, ast.Repeat(ast.Plus, ast.Concat{Left: a, Right: b})},
		{"opt", `(opt 'c')`, ast.Repeat(ast.Optional, c)},
		{"a*b", `(concat (star 'a') 'b')`, ast.Concat{Left: ast.Repeat(ast.Star, a), Right: b}},
		{
			"comments and whitespace",
			"; a*b\n(concat\n  (star 'a') ; zero or more\n  'b')\n",
			ast.Concat{Left: ast.Repeat(ast.Star, a), Right: b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	nodes := []ast.Node{
		ast.Sym('\''),
		ast.Sym('"'),
		ast.Sym('\\'),
		ast.Sym('日'),
		ast.Sequence(ast.Repeat(ast.Star, ast.Alternation(ast.Sym('a'), ast.Sym('b'))), ast.Literal("abb")),
		ast.Repeat(ast.Optional, ast.Repeat(ast.Plus, ast.Or{Left: ast.Sym('('), Right: ast.Sym(')')})),
	}

	for _, n := range nodes {
		got, err := Parse(n.String())
		if err != nil {
			t.Errorf("Parse(%s) error = %v", n, err)
			continue
		}
		if got != n {
			t.Errorf("Parse(%s) = %v, want the original tree", n, got)
		}
	}
}

func TestParseRejectsInvalidRunes(t *testing.T) {
	for _, c := range []rune{0xD800, 0xDFFF, 0x110000, -1} {
		src := ast.Sym(c).String()
		if got, err := Parse(src); err == nil {
			t.Errorf("Parse(%s) = %v, want error", src, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		isArity bool
	}{
		{"empty", ``, false},
		{"unknown operator", `(repeat 'a')`, false},
		{"unbalanced", `(star 'a'`, false},
		{"trailing input", `'a' 'b'`, false},
		{"multi-rune char", `'ab'`, false},
		{"empty string", `""`, false},
		{"bare identifier", `a`, false},
		{"concat arity", `(concat 'a')`, true},
		{"or arity", `(or)`, true},
		{"star arity", `(star 'a' 'b')`, true},
		{"opt arity", `(opt)`, true},
		{"nested arity", `(concat 'a' (plus))`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want error", tt.src)
			}
			if got := errors.Is(err, ErrArity); got != tt.isArity {
				t.Errorf("errors.Is(%v, ErrArity) = %v, want %v", err, got, tt.isArity)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse(`(star)`)
}
