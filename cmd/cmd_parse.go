package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.arith.dev/pkg"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <expression>...",
		Short: "Parse a single expression and print its tree",
		Long: `Parse the arguments, joined by spaces, as one expression.

Exits with a non-zero status when the expression has syntax errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			line := strings.TrimSpace(strings.Join(args, " "))
			if line == "" {
				return fmt.Errorf("empty expression")
			}

			session := arith.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
				arith.WithFormat(cfg.OutputFormat()),
				arith.WithStyle(diagnosticStyle(cfg.NoColor)),
				arith.WithLogger(newLogger(cmd.ErrOrStderr(), cfg.Level())),
			)

			ok, err := session.Eval(line)
			if err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("syntax errors in %q", line)
			}

			return nil
		},
	}
}
