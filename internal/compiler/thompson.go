package compiler

import (
	"fmt"
	"go/token"
	"io"

	"github.com/KromDaniel/thompson/internal/ast"
	"github.com/KromDaniel/thompson/internal/codegen"
	"github.com/KromDaniel/thompson/internal/nfa"
	"github.com/KromDaniel/thompson/internal/simulate"
	"github.com/dave/jennifer/jen"
)

// ThompsonGenerator emits a Go matcher that simulates a compiled NFA.
// Epsilon closures are computed at generation time, so the generated code only
// follows symbol edges and unions precomputed closures.
type ThompsonGenerator struct {
	compiler *Compiler
	nfa      *nfa.NFA
	expr     string
	closures map[nfa.NodeHandle][]nfa.NodeHandle // closure of every symbol-edge target
}

// NewThompsonGenerator prepares code generation for n, which was compiled from root.
func NewThompsonGenerator(c *Compiler, root ast.Node, n *nfa.NFA) *ThompsonGenerator {
	g := &ThompsonGenerator{
		compiler: c,
		nfa:      n,
		expr:     root.String(),
		closures: make(map[nfa.NodeHandle][]nfa.NodeHandle),
	}
	for info := range n.Nodes() {
		for _, t := range info.Transitions {
			if t.Label.Epsilon {
				continue
			}
			if _, ok := g.closures[t.To]; !ok {
				g.closures[t.To] = simulate.Closure(n, t.To)
			}
		}
	}
	return g
}

func (g *ThompsonGenerator) name() string { return g.compiler.config.Name }

func (g *ThompsonGenerator) table(suffix string) string {
	return codegen.TableName(g.name(), suffix)
}

// File builds the matcher source file.
func (g *ThompsonGenerator) File() *jen.File {
	log := g.compiler.logger
	log.Section("Code Generation")
	log.Log("Generating %s (states: %d, closures: %d)", g.name(), g.nfa.NumNodes(), len(g.closures))

	f := jen.NewFile(g.compiler.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by thompson for expression: %s", g.expr))
	f.HeaderComment("DO NOT EDIT.")

	f.Const().Defs(
		jen.Id(g.table(codegen.NumStatesSuffix)).Op("=").Lit(g.nfa.NumNodes()),
		jen.Id(g.table(codegen.AcceptSuffix)).Op("=").Lit(int(g.nfa.Accept())),
	)
	f.Line()

	f.Type().Id(g.table(codegen.EdgeTypeSuffix)).Struct(
		jen.Id(codegen.SymbolName).Rune(),
		jen.Id(codegen.TargetName).Int(),
	)
	f.Line()

	f.Comment("Epsilon closure of the start node")
	f.Var().Id(g.table(codegen.StartSuffix)).Op("=").Index().Int().Values(
		handleLits(simulate.Closure(g.nfa, g.nfa.Start()))...,
	)
	f.Line()

	f.Comment("Symbol edges per node, in insertion order")
	f.Var().Id(g.table(codegen.EdgesSuffix)).Op("=").
		Index(jen.Id(g.table(codegen.NumStatesSuffix))).Index().Id(g.table(codegen.EdgeTypeSuffix)).
		Values(g.edgeEntries()...)
	f.Line()

	f.Comment("Epsilon closures of symbol-edge targets")
	f.Var().Id(g.table(codegen.ClosuresSuffix)).Op("=").
		Index(jen.Id(g.table(codegen.NumStatesSuffix))).Index().Int().
		Values(g.closureEntries()...)
	f.Line()

	f.Comment(fmt.Sprintf("%s matches whole strings against %s", g.name(), g.expr))
	f.Type().Id(g.name()).Struct()
	f.Line()

	f.Var().Id(codegen.CompiledName(g.name())).Op("=").Id(g.name()).Values()
	f.Line()

	f.Comment("MatchString reports whether the whole input is accepted.")
	f.Func().Params(jen.Id(g.name())).Id("MatchString").
		Params(jen.Id(codegen.InputName).String()).
		Bool().
		Block(g.matchBody()...)
	f.Line()

	f.Comment("MatchBytes reports whether the whole UTF-8 input is accepted.")
	f.Func().Params(jen.Id("m").Id(g.name())).Id("MatchBytes").
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Bool().
		Block(
			jen.Return(jen.Id("m").Dot("MatchString").Call(jen.String().Call(jen.Id(codegen.InputName)))),
		)

	return f
}

func (g *ThompsonGenerator) edgeEntries() []jen.Code {
	var entries []jen.Code
	for info := range g.nfa.Nodes() {
		var edges []jen.Code
		for _, t := range info.Transitions {
			if t.Label.Epsilon {
				continue
			}
			edges = append(edges, jen.Values(jen.Dict{
				jen.Id(codegen.SymbolName): jen.LitRune(t.Label.Symbol),
				jen.Id(codegen.TargetName): jen.Lit(int(t.To)),
			}))
		}
		if len(edges) > 0 {
			entries = append(entries, jen.Lit(int(info.Handle)).Op(":").Values(edges...))
		}
	}
	return entries
}

func (g *ThompsonGenerator) closureEntries() []jen.Code {
	var entries []jen.Code
	for i := 0; i < g.nfa.NumNodes(); i++ {
		closure, ok := g.closures[nfa.NodeHandle(i)]
		if !ok {
			continue
		}
		entries = append(entries, jen.Lit(i).Op(":").Values(handleLits(closure)...))
	}
	return entries
}

// matchBody is the simulation loop over the precomputed tables.
func (g *ThompsonGenerator) matchBody() []jen.Code {
	numStates := jen.Id(g.table(codegen.NumStatesSuffix))
	current, next, alive := codegen.CurrentName, codegen.NextName, codegen.AliveName

	return []jen.Code{
		jen.Id(current).Op(":=").Make(jen.Index().Bool(), numStates.Clone()),
		jen.Id(next).Op(":=").Make(jen.Index().Bool(), numStates.Clone()),
		jen.For(jen.List(jen.Id("_"), jen.Id("s")).Op(":=").Range().Id(g.table(codegen.StartSuffix))).Block(
			jen.Id(current).Index(jen.Id("s")).Op("=").True(),
		),
		jen.Line(),
		jen.For(jen.List(jen.Id("_"), jen.Id("c")).Op(":=").Range().Id(codegen.InputName)).Block(
			jen.For(jen.Id("i").Op(":=").Range().Id(next)).Block(
				jen.Id(next).Index(jen.Id("i")).Op("=").False(),
			),
			jen.Id(alive).Op(":=").False(),
			jen.For(jen.List(jen.Id("s"), jen.Id("active")).Op(":=").Range().Id(current)).Block(
				jen.If(jen.Op("!").Id("active")).Block(jen.Continue()),
				jen.For(jen.List(jen.Id("_"), jen.Id("e")).Op(":=").Range().Id(g.table(codegen.EdgesSuffix)).Index(jen.Id("s"))).Block(
					jen.If(jen.Id("e").Dot(codegen.SymbolName).Op("!=").Id("c")).Block(jen.Continue()),
					jen.For(jen.List(jen.Id("_"), jen.Id("t")).Op(":=").Range().Id(g.table(codegen.ClosuresSuffix)).Index(jen.Id("e").Dot(codegen.TargetName))).Block(
						jen.Id(next).Index(jen.Id("t")).Op("=").True(),
					),
					jen.Id(alive).Op("=").True(),
				),
			),
			jen.If(jen.Op("!").Id(alive)).Block(jen.Return(jen.False())),
			jen.List(jen.Id(current), jen.Id(next)).Op("=").List(jen.Id(next), jen.Id(current)),
		),
		jen.Line(),
		jen.Return(jen.Id(current).Index(jen.Id(g.table(codegen.AcceptSuffix)))),
	}
}

// TestFile builds a test file asserting the generated matcher agrees with the
// simulator on inputs.
func (g *ThompsonGenerator) TestFile(inputs []string) *jen.File {
	f := jen.NewFile(g.compiler.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by thompson for expression: %s", g.expr))
	f.HeaderComment("DO NOT EDIT.")

	cases := make([]jen.Code, 0, len(inputs))
	for _, in := range inputs {
		want := simulate.AcceptsString(g.nfa, in)
		g.compiler.logger.Log("test input %q: %v", in, want)
		cases = append(cases, jen.Values(jen.Lit(in), jen.Lit(want)))
	}

	for _, method := range []struct {
		name string
		arg  func(jen.Code) jen.Code
	}{
		{"MatchString", func(in jen.Code) jen.Code { return in }},
		{"MatchBytes", func(in jen.Code) jen.Code { return jen.Index().Byte().Call(in) }},
	} {
		f.Func().Id(codegen.TestFuncName(g.name(), method.name)).
			Params(jen.Id("t").Op("*").Qual("testing", "T")).
			Block(
				jen.Id("tests").Op(":=").Index().Struct(
					jen.Id(codegen.InputName).String(),
					jen.Id("want").Bool(),
				).Values(cases...),
				jen.Line(),
				jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
					jen.If(
						jen.Id("got").Op(":=").Id(codegen.CompiledName(g.name())).Dot(method.name).
							Call(method.arg(jen.Id("tt").Dot(codegen.InputName))),
						jen.Id("got").Op("!=").Id("tt").Dot("want"),
					).Block(
						jen.Id("t").Dot("Errorf").Call(
							jen.Lit(method.name+"(%q) = %v, want %v"),
							jen.Id("tt").Dot(codegen.InputName), jen.Id("got"), jen.Id("tt").Dot("want"),
						),
					),
				),
			)
		f.Line()
	}
	return f
}

func handleLits(hs []nfa.NodeHandle) []jen.Code {
	out := make([]jen.Code, len(hs))
	for i, h := range hs {
		out[i] = jen.Lit(int(h))
	}
	return out
}

// validateGeneration checks the configuration fields code generation depends on.
func (c *Compiler) validateGeneration() error {
	if !codegen.IsIdentifier(c.config.Name) || !isASCIILetter(c.config.Name[0]) {
		return fmt.Errorf("name %q must be a Go identifier starting with an ASCII letter", c.config.Name)
	}
	if codegen.IsReserved(c.config.Name) {
		return fmt.Errorf("name %q is a Go keyword or predeclared identifier", c.config.Name)
	}
	if !codegen.IsIdentifier(c.config.Package) || c.config.Package == "_" || token.IsKeyword(c.config.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", c.config.Package)
	}
	return nil
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// Render compiles root and writes the matcher source to w.
func (c *Compiler) Render(w io.Writer, root ast.Node) error {
	if err := c.validateGeneration(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	gen := NewThompsonGenerator(c, root, c.Compile(root))
	if err := gen.File().Render(w); err != nil {
		return fmt.Errorf("failed to render matcher: %w", err)
	}
	return nil
}

// Generate compiles root and writes the matcher to the configured output file,
// plus the test file when enabled.
func (c *Compiler) Generate(root ast.Node) error {
	if err := c.validateGeneration(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.config.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}

	gen := NewThompsonGenerator(c, root, c.Compile(root))

	if err := gen.File().Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	c.logger.Log("Wrote %s", c.config.OutputFile)

	if c.config.GenerateTestFile {
		testFile := codegen.TestFileName(c.config.OutputFile)
		if err := gen.TestFile(c.config.TestFileInputs).Save(testFile); err != nil {
			return fmt.Errorf("failed to save test file: %w", err)
		}
		c.logger.Log("Wrote %s", testFile)
	}

	return nil
}
