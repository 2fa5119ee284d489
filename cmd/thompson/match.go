package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/thompson/internal/compiler"
	"github.com/KromDaniel/thompson/internal/nfa"
	"github.com/KromDaniel/thompson/internal/simulate"
)

func newMatchCmd(root *rootOptions) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "match <expr> <input>...",
		Short: "Report whether the compiled NFA accepts each input",
		Long: `Match simulates the compiled NFA over each input and prints "accept" or
"reject" next to it. The command fails if any input is rejected.`,
		Example: `  thompson match "(star 'a')" "" aaa ab`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := readExpr(cmd, args[0])
			if err != nil {
				return err
			}
			n := root.compiler(cmd, compiler.Config{}).Compile(node)

			out := cmd.OutOrStdout()
			rejected := 0
			for _, in := range args[1:] {
				var ok bool
				if trace {
					var steps []simulate.Step
					steps, ok = simulate.Trace(n, in)
					writeTrace(out, steps)
				} else {
					ok = simulate.AcceptsString(n, in)
				}
				verdict := "accept"
				if !ok {
					verdict = "reject"
					rejected++
				}
				fmt.Fprintf(out, "%s\t%q\n", verdict, in)
			}

			if rejected > 0 {
				return fmt.Errorf("%d of %d inputs rejected: %w", rejected, len(args)-1, errFailed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "Print the active node set after each symbol")
	return cmd
}

func writeTrace(w io.Writer, steps []simulate.Step) {
	for _, s := range steps {
		label := "start"
		if s.Consumed != nil {
			label = fmt.Sprintf("%q", *s.Consumed)
		}
		fmt.Fprintf(w, "  %-6s {%s}\n", label, joinHandles(s.Active))
	}
}

func joinHandles(hs []nfa.NodeHandle) string {
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = fmt.Sprint(int(h))
	}
	return strings.Join(parts, ", ")
}
