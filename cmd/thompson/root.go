package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/thompson/internal/ast"
	"github.com/KromDaniel/thompson/internal/compiler"
	"github.com/KromDaniel/thompson/internal/sexpr"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// errFailed is returned after a command already reported its failures.
var errFailed = errors.New("failed")

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "thompson",
		Short: "Thompson construction of regex syntax trees",
		Long: `thompson lowers regex syntax trees into nondeterministic finite automata
using Thompson's construction.

Expressions are written in S-expression notation:

  'a'                      a single symbol
  "abc"                    a sequence of symbols
  (concat x y ...)         concatenation
  (or x y ...)             alternation
  (star x) (plus x) (opt x)

Pass "-" instead of an expression to read it from stdin.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log the construction to stderr")

	cmd.AddCommand(
		newPrintCmd(opts),
		newDotCmd(opts),
		newMatchCmd(opts),
		newCheckCmd(opts),
		newGenerateCmd(opts),
		newStatsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// logger returns the verbose logger, writing to the command's stderr.
func (o *rootOptions) logger(cmd *cobra.Command) *compiler.Logger {
	l := compiler.NewLogger(o.verbose)
	l.SetOutput(cmd.ErrOrStderr())
	return l
}

// compiler returns a compiler sharing the command's logger.
func (o *rootOptions) compiler(cmd *cobra.Command, config compiler.Config) *compiler.Compiler {
	c := compiler.New(config)
	c.SetLogger(o.logger(cmd))
	return c
}

// readExpr parses arg, or stdin when arg is "-".
func readExpr(cmd *cobra.Command, arg string) (ast.Node, error) {
	src := arg
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		src = string(data)
	}
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("expression cannot be empty")
	}
	return sexpr.Parse(src)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "thompson %s\n", version)
		},
	}
}
