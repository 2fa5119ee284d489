package printer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/KromDaniel/thompson/internal/ast"
	"github.com/KromDaniel/thompson/internal/compiler"
	"github.com/KromDaniel/thompson/internal/printer"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{
			name: "symbol",
			node: ast.Sym('a'),
			want: "0 -'a'> 1\n1 [accept]\n",
		},
		{
			name: "a*b",
			node: ast.Concat{Left: ast.Repeat(ast.Star, ast.Sym('a')), Right: ast.Sym('b')},
			want: strings.Join([]string{
				"2 -ε> 0",
				"2 -ε> 3",
				"0 -'a'> 1",
				"1 -ε> 0",
				"1 -ε> 3",
				"3 -ε> 4",
				"4 -'b'> 5",
				"5 [accept]",
			}, "\n") + "\n",
		},
		{
			name: "a|b",
			node: ast.Or{Left: ast.Sym('a'), Right: ast.Sym('b')},
			want: strings.Join([]string{
				"4 -ε> 0",
				"4 -ε> 2",
				"0 -'a'> 1",
				"1 -ε> 5",
				"2 -'b'> 3",
				"3 -ε> 5",
				"5 [accept]",
			}, "\n") + "\n",
		},
		{
			name: "epsilon symbol",
			node: ast.Sym('ε'),
			want: "0 -'ε'> 1\n1 [accept]\n",
		},
		{
			name: "newline symbol",
			node: ast.Sym('\n'),
			want: "0 -'\\n'> 1\n1 [accept]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := printer.Text(compiler.Compile(tt.node))
			if got != tt.want {
				t.Errorf("Text() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestTextListsEveryTransition(t *testing.T) {
	n := compiler.Compile(ast.Sequence(
		ast.Repeat(ast.Plus, ast.Alternation(ast.Sym('x'), ast.Sym('y'))),
		ast.Repeat(ast.Optional, ast.Sym('z')),
	))
	lines := strings.Split(strings.TrimSuffix(printer.Text(n), "\n"), "\n")
	stats := n.Stats()
	if len(lines) != stats.Transitions+1 {
		t.Errorf("Text() has %d lines, want %d transitions + 1 accept line", len(lines), stats.Transitions)
	}
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	n := compiler.Compile(ast.Concat{Left: ast.Repeat(ast.Star, ast.Sym('a')), Right: ast.Sym('b')})
	if err := printer.WriteDOT(&buf, n); err != nil {
		t.Fatalf("WriteDOT() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"digraph NFA {\n",
		"rankdir=LR;",
		"_start -> n2;",
		`n5 [shape=doublecircle, label="5"];`,
		`n0 [shape=circle, label="0"];`,
		`n0 -> n1 [label="'a'"];`,
		`n2 -> n3 [label="ε"];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteDOT() output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("WriteDOT() output not terminated:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrors(t *testing.T) {
	n := compiler.Compile(ast.Sym('a'))
	if err := printer.WriteText(failingWriter{}, n); err == nil {
		t.Error("WriteText() error = nil, want error")
	}
	if err := printer.WriteDOT(failingWriter{}, n); err == nil {
		t.Error("WriteDOT() error = nil, want error")
	}
}
