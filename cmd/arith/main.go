package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"arith/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "arith",
	Short: "Arithmetic expression calculator",
	Long:  `Arith evaluates integer arithmetic expressions and underlines the exact source of any error`,
	RunE:  runRepl, // bare "arith" starts the interactive session
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to arith.toml (default: nearest upward from cwd)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// applyColorMode resolves the --color flag (or config value) against
// the output stream.
func applyColorMode(mode string, out *os.File) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default: // auto
		color.NoColor = !isTerminal(out)
	}
}
