package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arith/internal/config"
	"arith/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive calculator session",
	Long:  `Read expressions line by line, printing either the computed value or a positioned diagnostic`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadSessionConfig(cmd)
	if err != nil {
		return err
	}

	sess := repl.New(repl.Options{
		Prompt:  cfg.Prompt,
		History: cfg.History,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	return sess.Run(os.Stdin)
}

// loadSessionConfig resolves the session configuration: an explicit
// --config path wins, otherwise the nearest arith.toml upward from the
// working directory, otherwise defaults. The --color flag overrides the
// configured color mode when set explicitly.
func loadSessionConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return config.Config{}, err
	}

	mode := cfg.Color
	if cmd.Root().PersistentFlags().Changed("color") {
		mode, err = cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	applyColorMode(mode, os.Stderr)

	return cfg, nil
}
