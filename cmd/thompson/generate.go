package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/thompson/internal/compiler"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var (
		config   compiler.Config
		testFile bool
	)
	cmd := &cobra.Command{
		Use:   "generate <expr>",
		Short: "Generate a standalone Go matcher",
		Long: `Generate compiles the expression and writes a Go file declaring a matcher
type with MatchString and MatchBytes methods. The generated code has no
dependencies outside the standard library.`,
		Example: `  thompson generate "(concat (star 'a') 'b')" --name AStarB --output astarb.go --test-inputs ab,ba`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := readExpr(cmd, args[0])
			if err != nil {
				return err
			}

			config.GenerateTestFile = testFile || len(config.TestFileInputs) > 0
			if config.GenerateTestFile && len(config.TestFileInputs) == 0 {
				config.TestFileInputs = []string{""}
			}

			if err := root.compiler(cmd, config).Generate(node); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.OutputFile)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&config.Name, "name", "", "Type name of the generated matcher")
	f.StringVar(&config.Package, "package", "main", "Package of the generated file")
	f.StringVarP(&config.OutputFile, "output", "o", "", "Output file path")
	f.StringSliceVar(&config.TestFileInputs, "test-inputs", nil, "Inputs asserted by the generated test file")
	f.BoolVar(&testFile, "test-file", false, "Generate a _test.go file next to the output")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
