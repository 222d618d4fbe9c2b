// Package config loads pylint.toml, the per-project settings file. The
// file is optional; every field has a default so an empty or missing file
// yields a usable configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/romarionagy/pylint/internal/checkers"
)

// FileName is the manifest looked up by FindConfig.
const FileName = "pylint.toml"

// RulesSection selects which rules run. Entries accept a rule symbol,
// a code ID or an old alias, case-insensitively.
type RulesSection struct {
	Enable  []string `toml:"enable"`
	Disable []string `toml:"disable"`
}

// OutputSection controls diagnostic rendering.
type OutputSection struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max-diagnostics"`
	FullPaths      bool   `toml:"full-paths"`
	ShowNotes      bool   `toml:"show-notes"`
}

// RunSection controls how the driver walks inputs.
type RunSection struct {
	Jobs int `toml:"jobs"` // 0 means one worker per CPU
}

// Config is the parsed pylint.toml.
type Config struct {
	Rules  RulesSection  `toml:"rules"`
	Output OutputSection `toml:"output"`
	Run    RunSection    `toml:"run"`
}

// Default returns the configuration used when no pylint.toml exists.
func Default() Config {
	return Config{
		Output: OutputSection{
			Format:         "pretty",
			Color:          "auto",
			MaxDiagnostics: 500,
			ShowNotes:      true,
		},
	}
}

// Load parses path on top of the defaults and rejects unknown keys.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate(path string) error {
	switch c.Output.Format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("%s: [output].format must be pretty, json or short, got %q", path, c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%s: [output].color must be auto, always or never, got %q", path, c.Output.Color)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("%s: [output].max-diagnostics must not be negative", path)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("%s: [run].jobs must not be negative", path)
	}
	return nil
}

// RuleSet builds the active rule set: defaults, then enables, then
// disables, so a rule named in both lists ends up off.
func (c Config) RuleSet() (*checkers.RuleSet, error) {
	rs := checkers.DefaultRules()
	for _, name := range c.Rules.Enable {
		if err := rs.Enable(name); err != nil {
			return nil, err
		}
	}
	for _, name := range c.Rules.Disable {
		if err := rs.Disable(name); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// FindConfig walks up from startDir to locate pylint.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
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

// Discover loads the nearest pylint.toml above startDir, falling back to
// the defaults when none exists. The returned path is "" for defaults.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
