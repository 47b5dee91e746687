// Package config loads the optional arith.toml session configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working
// directory upward.
const FileName = "arith.toml"

// Config controls the interactive calculator session.
type Config struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
	Color   string `toml:"color"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Prompt: "> ",
		Color:  "auto",
	}
}

// Load reads the configuration at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find walks from startDir upward looking for arith.toml. The boolean
// reports whether a file was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest arith.toml, falling back to defaults when
// none exists.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color mode %q (want auto|on|off)", c.Color)
	}
	if c.Prompt == "" {
		return errors.New("prompt must not be empty")
	}
	return nil
}
