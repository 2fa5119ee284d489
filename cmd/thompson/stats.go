package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/thompson/internal/compiler"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <expr>",
		Short: "Summarize the shape of the compiled NFA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := readExpr(cmd, args[0])
			if err != nil {
				return err
			}
			n := root.compiler(cmd, compiler.Config{}).Compile(node)
			s := n.Stats()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:       %d\n", s.Nodes)
			fmt.Fprintf(out, "transitions: %d (ε: %d)\n", s.Transitions, s.Epsilons)
			fmt.Fprintf(out, "alphabet:    %q\n", string(s.Alphabet))
			fmt.Fprintf(out, "start:       %d\n", n.Start())
			fmt.Fprintf(out, "accept:      %d\n", n.Accept())
			return nil
		},
	}
}
