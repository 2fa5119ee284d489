package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/thompson/internal/suite"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <suite>...",
		Short: "Run acceptance suites written in YAML or TOML",
		Long: `Check loads each suite file, compiles every case and verifies that the
listed inputs are accepted or rejected. The format is chosen by the file
extension (.yaml, .yml or .toml).`,
		Example: `  thompson check suites/basic.yaml suites/quantifiers.toml`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logger := root.logger(cmd)

			failed := 0
			for _, path := range args {
				s, err := suite.Load(path)
				if err != nil {
					return err
				}

				report := suite.Run(s, logger)
				for _, res := range report.Results {
					switch {
					case res.Err != nil:
						fmt.Fprintf(out, "FAIL\t%s/%s\t%v\n", report.Suite, res.Case, res.Err)
					case len(res.Failures) > 0:
						fmt.Fprintf(out, "FAIL\t%s/%s\n", report.Suite, res.Case)
						for _, f := range res.Failures {
							want := "accept"
							if !f.Want {
								want = "reject"
							}
							fmt.Fprintf(out, "\t%q: want %s\n", f.Input, want)
						}
					default:
						fmt.Fprintf(out, "ok\t%s/%s\t%d inputs\n", report.Suite, res.Case, res.Checked)
					}
				}
				failed += len(report.Failed())
			}

			if failed > 0 {
				return fmt.Errorf("%d cases failed: %w", failed, errFailed)
			}
			return nil
		},
	}
}
