package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/thompson/internal/ast"
	"github.com/KromDaniel/thompson/internal/compiler"
	"github.com/KromDaniel/thompson/internal/printer"
)

func newPrintCmd(root *rootOptions) *cobra.Command {
	var showAST bool
	cmd := &cobra.Command{
		Use:   "print <expr>",
		Short: "Print the transitions of the compiled NFA",
		Long: `Print lists every transition of the compiled NFA as "<from> -<label>> <to>",
starting with the start node, followed by the accepting node.`,
		Example: `  thompson print "(concat (star 'a') 'b')"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := readExpr(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if showAST {
				fmt.Fprint(out, ast.Describe(node))
				fmt.Fprintln(out)
			}
			n := root.compiler(cmd, compiler.Config{}).Compile(node)
			return printer.WriteText(out, n)
		},
	}
	cmd.Flags().BoolVar(&showAST, "ast", false, "Print the syntax tree before the automaton")
	return cmd
}

func newDotCmd(root *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "dot <expr>",
		Short:   "Export the compiled NFA in Graphviz DOT format",
		Example: `  thompson dot "(or 'a' 'b')" -o ab.dot && dot -Tpng ab.dot -o ab.png`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := readExpr(cmd, args[0])
			if err != nil {
				return err
			}
			n := root.compiler(cmd, compiler.Config{}).Compile(node)

			if output == "" {
				return printer.WriteDOT(cmd.OutOrStdout(), n)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := printer.WriteDOT(f, n); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
