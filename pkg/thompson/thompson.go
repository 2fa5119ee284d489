// Package thompson compiles regex syntax trees into nondeterministic finite automata
// with Thompson's construction, simulates them, and generates standalone Go matchers.
//
// Expressions are given either as ast.Node values or in S-expression notation:
//
//	n, err := thompson.CompileExpr(`(concat (star 'a') 'b')`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	thompson.AcceptsString(n, "aaab") // true
package thompson

import (
	"fmt"
	"io"

	"github.com/KromDaniel/thompson/internal/ast"
	"github.com/KromDaniel/thompson/internal/compiler"
	"github.com/KromDaniel/thompson/internal/nfa"
	"github.com/KromDaniel/thompson/internal/printer"
	"github.com/KromDaniel/thompson/internal/sexpr"
	"github.com/KromDaniel/thompson/internal/simulate"
)

// Regex is a regex syntax tree.
type Regex = ast.Node

// NFA is a compiled automaton.
type NFA = nfa.NFA

// Options configures code generation.
type Options struct {
	// Expr is the expression to compile, in S-expression notation
	Expr string

	// Name is the type name of the generated matcher (e.g., "AStarB" generates "CompiledAStarB")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile generates a test file asserting the verdicts for TestFileInputs
	// (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs is a list of inputs for the generated test file. If empty and
	// GenerateTestFile is true, defaults to the empty string
	TestFileInputs []string

	// Verbose logs the construction to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Expr == "" {
		return fmt.Errorf("expression cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Parse reads an expression in S-expression notation.
func Parse(expr string) (Regex, error) {
	return sexpr.Parse(expr)
}

// Compile builds the Thompson NFA of root. It never fails.
func Compile(root Regex) *NFA {
	return compiler.Compile(root)
}

// CompileExpr parses expr and compiles it.
func CompileExpr(expr string) (*NFA, error) {
	root, err := sexpr.Parse(expr)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(root), nil
}

// Accepts reports whether n accepts input.
func Accepts(n *NFA, input []rune) bool {
	return simulate.Accepts(n, input)
}

// AcceptsString reports whether n accepts the runes of s.
func AcceptsString(n *NFA, s string) bool {
	return simulate.AcceptsString(n, s)
}

// Print writes the text listing of n to w.
func Print(w io.Writer, n *NFA) error {
	return printer.WriteText(w, n)
}

// Generate writes a standalone Go matcher for opts.Expr.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	root, err := sexpr.Parse(opts.Expr)
	if err != nil {
		return err
	}

	generateTestFile := opts.GenerateTestFile || len(opts.TestFileInputs) > 0
	testInputs := opts.TestFileInputs
	if generateTestFile && len(testInputs) == 0 {
		testInputs = []string{""}
	}

	c := compiler.New(compiler.Config{
		Name:             opts.Name,
		Package:          opts.Package,
		OutputFile:       opts.OutputFile,
		GenerateTestFile: generateTestFile,
		TestFileInputs:   testInputs,
		Verbose:          opts.Verbose,
	})
	if err := c.Generate(root); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
