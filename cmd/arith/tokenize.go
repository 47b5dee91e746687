package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arith/internal/diag"
	"arith/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <expression>",
	Short: "Print the token sequence for an expression",
	Long:  `Tokenize breaks an expression down into its constituent tokens with their byte spans`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	input := args[0]

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	applyColorMode(colorMode, os.Stderr)

	toks, lexErr := lexer.Lex(input)
	if lexErr != nil {
		diag.ShowDiagnostic(os.Stderr, lexErr, input)
		os.Exit(1)
	}

	for _, tok := range toks {
		fmt.Fprintf(os.Stdout, "%-8s %s\n", tok, tok.Span)
	}
	return nil
}
