// Package compiler implements Thompson's construction from regex syntax trees to NFAs,
// and generates standalone Go matchers from the resulting automata.
package compiler

import (
	"fmt"

	"github.com/KromDaniel/thompson/internal/ast"
	"github.com/KromDaniel/thompson/internal/nfa"
)

// Config holds the configuration for compilation and code generation.
type Config struct {
	Name             string   // Type name of the generated matcher
	Package          string   // Package of the generated file
	OutputFile       string   // Path of the generated file
	GenerateTestFile bool     // Generate a _test.go file next to OutputFile
	TestFileInputs   []string // Inputs asserted by the generated test file
	Verbose          bool     // Enable verbose logging
}

// Compiler lowers syntax trees into automata.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}
}

// Logger returns the compiler's verbose logger.
func (c *Compiler) Logger() *Logger { return c.logger }

// SetLogger replaces the logger configured by Config.Verbose.
func (c *Compiler) SetLogger(l *Logger) { c.logger = l }

// Compile builds the Thompson NFA of root with a silent compiler.
func Compile(root ast.Node) *nfa.NFA {
	return New(Config{}).Compile(root)
}

// Compile builds the Thompson NFA of root. The exit node of the top-level fragment
// becomes the single accepting node. Compilation cannot fail.
func (c *Compiler) Compile(root ast.Node) *nfa.NFA {
	c.logger.Section("Thompson Construction")
	c.logger.Log("Expression: %s", root)

	b := nfa.NewBuilder()
	top := c.lower(b, root)
	n := b.Finish(top.entry, top.exit)

	c.logger.Stats(n)
	return n
}

// frag is a sub-automaton under construction. exit has no outgoing
// transitions when a frag is returned from lower.
type frag struct {
	entry nfa.NodeHandle
	exit  nfa.NodeHandle
}

func (c *Compiler) lower(b *nfa.Builder, node ast.Node) frag {
	var f frag
	switch n := node.(type) {
	case ast.Symbol:
		f = frag{entry: b.AllocateNode(), exit: b.AllocateNode()}
		b.AddTransition(f.entry, nfa.On(n.Char), f.exit)
		c.logger.Fragment("symbol", f.entry, f.exit)

	case ast.Concat:
		left := c.lower(b, n.Left)
		right := c.lower(b, n.Right)
		b.AddTransition(left.exit, nfa.Epsilon, right.entry)
		f = frag{entry: left.entry, exit: right.exit}
		c.logger.Fragment("concat", f.entry, f.exit)

	case ast.Or:
		left := c.lower(b, n.Left)
		right := c.lower(b, n.Right)
		f = frag{entry: b.AllocateNode(), exit: b.AllocateNode()}
		// left before right keeps transition order stable for printing
		b.AddTransition(f.entry, nfa.Epsilon, left.entry)
		b.AddTransition(f.entry, nfa.Epsilon, right.entry)
		b.AddTransition(left.exit, nfa.Epsilon, f.exit)
		b.AddTransition(right.exit, nfa.Epsilon, f.exit)
		c.logger.Fragment("or", f.entry, f.exit)

	case ast.Quantified:
		f = c.lowerQuantified(b, n)
		c.logger.Fragment(n.Kind.String(), f.entry, f.exit)

	default:
		panic(fmt.Sprintf("compiler: unknown ast node %T", node))
	}
	return f
}

// lowerQuantified surrounds the inner fragment with fresh boundary nodes so the
// inner entry is never reachable from outside except through them.
func (c *Compiler) lowerQuantified(b *nfa.Builder, q ast.Quantified) frag {
	inner := c.lower(b, q.Inner)
	f := frag{entry: b.AllocateNode(), exit: b.AllocateNode()}

	b.AddTransition(f.entry, nfa.Epsilon, inner.entry)
	switch q.Kind {
	case ast.Star:
		b.AddTransition(f.entry, nfa.Epsilon, f.exit)
		b.AddTransition(inner.exit, nfa.Epsilon, inner.entry)
	case ast.Plus:
		b.AddTransition(inner.exit, nfa.Epsilon, inner.entry)
	case ast.Optional:
		b.AddTransition(f.entry, nfa.Epsilon, f.exit)
	default:
		panic(fmt.Sprintf("compiler: unknown quantifier %v", q.Kind))
	}
	b.AddTransition(inner.exit, nfa.Epsilon, f.exit)
	return f
}
