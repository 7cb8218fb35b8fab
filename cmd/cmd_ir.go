package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.arith.dev/pkg"
)

func newIRCmd() *cobra.Command {
	var moduleName string

	cmd := &cobra.Command{
		Use:   "ir [expression]...",
		Short: "Print LLVM IR for an expression",
		Long: `Lower an expression into the body of an i64 main function and print
the LLVM module.

Without an expression, prints a module whose i32 main returns 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			line := strings.TrimSpace(strings.Join(args, " "))
			if line == "" {
				_, err := fmt.Fprintln(out, arith.ConstantModule(moduleName))
				return err
			}

			expr, errs := arith.Parse(line)
			if len(errs) != 0 {
				for _, e := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), arith.Diagnostic(line, e, arith.PlainStyle))
				}

				return fmt.Errorf("syntax errors in %q", line)
			}

			_, err := fmt.Fprintln(out, arith.GenerateIR(moduleName, expr))
			return err
		},
	}

	cmd.Flags().StringVar(&moduleName, "name", "Test", "source file name recorded in the module")

	return cmd
}
