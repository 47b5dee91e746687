package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arith/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(os.Stdout, "arith %s\n", version.Version)
	if version.GitCommit != "" {
		fmt.Fprintf(os.Stdout, "commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(os.Stdout, "built:  %s\n", version.BuildDate)
	}
}
