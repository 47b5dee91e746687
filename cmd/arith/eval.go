package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arith/internal/diag"
	"arith/internal/repl"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] <expression>",
	Short: "Evaluate a single expression",
	Long:  `Evaluate one arithmetic expression and print the result, or a caret-underlined diagnostic on failure`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().Bool("trace", false, "print the error cause chain instead of the diagnostic")
}

func runEval(cmd *cobra.Command, args []string) error {
	input := args[0]

	showTrace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	applyColorMode(colorMode, os.Stderr)

	value, evalErr := repl.EvalLine(input)
	if evalErr != nil {
		if showTrace {
			diag.ShowTrace(os.Stderr, evalErr)
		} else {
			diag.ShowDiagnostic(os.Stderr, evalErr, input)
		}
		os.Exit(1)
	}

	fmt.Fprintln(os.Stdout, value)
	return nil
}
