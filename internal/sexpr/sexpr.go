// Package sexpr reads the S-expression notation of regex syntax trees.
//
// The notation maps one-to-one onto the ast variants:
//
//	'a'                     Symbol
//	"abc"                   Concat of 'a' 'b' 'c'
//	(concat x y ...)        Concat, left-folded
//	(or x y ...)            Or, left-folded
//	(star x) (plus x) (opt x)
//
// A ';' starts a comment running to the end of the line. ast.Node.String renders
// the same notation, so Parse(n.String()) reproduces n whenever every symbol of n is a
// valid rune. Invalid runes render as \U escapes, which Parse rejects.
package sexpr

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/KromDaniel/thompson/internal/ast"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrArity is returned when an operator receives the wrong number of operands.
var ErrArity = errors.New("wrong number of operands")

type expr struct {
	Pos    lexer.Position
	Char   *string `parser:"  @Char"`
	String *string `parser:"| @String"`
	List   *list   `parser:"| '(' @@ ')'"`
}

type list struct {
	Pos  lexer.Position
	Op   string  `parser:"@('concat' | 'or' | 'star' | 'plus' | 'opt')"`
	Args []*expr `parser:"@@*"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])+'`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[expr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("Char", "String"),
)

// Parse reads a single expression from src.
func Parse(src string) (ast.Node, error) {
	tree, err := parser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression: %w", err)
	}
	return tree.node()
}

// MustParse is like Parse but panics on error.
func MustParse(src string) ast.Node {
	n, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return n
}

func (e *expr) node() (ast.Node, error) {
	switch {
	case e.Char != nil:
		if utf8.RuneCountInString(*e.Char) != 1 {
			return nil, fmt.Errorf("%s: character literal %q must hold exactly one symbol", e.Pos, *e.Char)
		}
		r, _ := utf8.DecodeRuneInString(*e.Char)
		return ast.Sym(r), nil
	case e.String != nil:
		if *e.String == "" {
			return nil, fmt.Errorf("%s: empty string literal", e.Pos)
		}
		return ast.Literal(*e.String), nil
	default:
		return e.List.node()
	}
}

func (l *list) node() (ast.Node, error) {
	args := make([]ast.Node, len(l.Args))
	for i, a := range l.Args {
		n, err := a.node()
		if err != nil {
			return nil, err
		}
		args[i] = n
	}

	switch l.Op {
	case "concat", "or":
		if len(args) < 2 {
			return nil, fmt.Errorf("%s: %s takes at least 2 operands, got %d: %w", l.Pos, l.Op, len(args), ErrArity)
		}
		if l.Op == "concat" {
			return ast.Sequence(args...), nil
		}
		return ast.Alternation(args...), nil
	default:
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: %s takes exactly 1 operand, got %d: %w", l.Pos, l.Op, len(args), ErrArity)
		}
		return ast.Repeat(kinds[l.Op], args[0]), nil
	}
}

var kinds = map[string]ast.Kind{
	"star": ast.Star,
	"plus": ast.Plus,
	"opt":  ast.Optional,
}
