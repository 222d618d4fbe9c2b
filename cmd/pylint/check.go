package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/romarionagy/pylint/internal/checkers"
	"github.com/romarionagy/pylint/internal/config"
	"github.com/romarionagy/pylint/internal/diag"
	"github.com/romarionagy/pylint/internal/diagfmt"
	"github.com/romarionagy/pylint/internal/driver"
	"github.com/romarionagy/pylint/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.snap|directory>",
	Short: "Check Python AST snapshots for implicit-booleaness findings",
	Long:  `Check a snapshot file or all *.snap files within a directory for non-idiomatic emptiness and zero tests`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// init registers CLI flags for the check command used by runCheck.
func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|json|short), overrides pylint.toml")
	checkCmd.Flags().String("config", "", "path to pylint.toml (default: nearest one above the input)")
	checkCmd.Flags().StringSlice("enable", nil, "rules to enable by symbol, code or legacy alias")
	checkCmd.Flags().StringSlice("disable", nil, "rules to disable by symbol, code or legacy alias")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("confidence", false, "show the confidence level of each finding")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

type checkSettings struct {
	format    string
	pathMode  diagfmt.PathMode
	useColor  bool
	withNotes bool
	suggest   bool
	showConf  bool
	maxDiag   int
	jobs      int
	rules     *checkers.RuleSet
}

// runCheck executes the "check" command: it merges pylint.toml with the
// command flags, runs the checker over the given path (single snapshot or
// directory), renders the findings in the chosen format, and exits with a
// non-zero status when anything was found.
func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	st, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	settings, err := buildSettings(cmd, inputPath, st.IsDir())
	if err != nil {
		return err
	}

	opts := driver.Options{
		MaxDiagnostics: settings.maxDiag,
		Jobs:           settings.jobs,
		Rules:          settings.rules,
	}

	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)
	if st.IsDir() {
		fileSet, results, err = runCheckDir(cmd, inputPath, opts, settings)
	} else {
		fileSet = source.NewFileSetWithBase(filepath.Dir(inputPath))
		results = []driver.FileResult{driver.CheckFile(fileSet, inputPath, opts)}
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if err := renderResults(cmd, fileSet, results, settings); err != nil {
		return err
	}

	for _, r := range results {
		if r.Bag.HasFindings() {
			// Suppress cobra usage output on findings
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("") // Silent error - diagnostics already printed
		}
	}
	return nil
}

func runCheckDir(cmd *cobra.Command, dir string, opts driver.Options, settings checkSettings) (*source.FileSet, []driver.FileResult, error) {
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return nil, nil, err
	}

	if shouldUseTUI(mode) && settings.format == "pretty" {
		files, err := driver.ListSnapshots(dir)
		if err != nil {
			return nil, nil, err
		}
		if len(files) > 0 {
			return runCheckDirWithUI(cmd.Context(), "checking "+dir, dir, files, opts)
		}
	}
	fileSet, results, err := driver.CheckDir(cmd.Context(), dir, opts)
	return fileSet, results, err
}

// buildSettings merges pylint.toml (nearest one, or --config) with the
// command-line flags; flags win where both specify a value.
func buildSettings(cmd *cobra.Command, inputPath string, isDir bool) (checkSettings, error) {
	configDir := inputPath
	if !isDir {
		configDir = filepath.Dir(inputPath)
	}

	var (
		cfg config.Config
		err error
	)
	if cfgPath, ferr := cmd.Flags().GetString("config"); ferr != nil {
		return checkSettings{}, ferr
	} else if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, _, err = config.Discover(configDir)
	}
	if err != nil {
		return checkSettings{}, err
	}

	rules, err := cfg.RuleSet()
	if err != nil {
		return checkSettings{}, err
	}
	enable, err := cmd.Flags().GetStringSlice("enable")
	if err != nil {
		return checkSettings{}, err
	}
	for _, name := range enable {
		if err := rules.Enable(name); err != nil {
			return checkSettings{}, err
		}
	}
	disable, err := cmd.Flags().GetStringSlice("disable")
	if err != nil {
		return checkSettings{}, err
	}
	for _, name := range disable {
		if err := rules.Disable(name); err != nil {
			return checkSettings{}, err
		}
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return checkSettings{}, err
	}
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return checkSettings{}, fmt.Errorf("unknown format: %s", format)
	}

	maxDiag := cfg.Output.MaxDiagnostics
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiag, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		if err != nil {
			return checkSettings{}, err
		}
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return checkSettings{}, err
	}
	if jobs == 0 {
		jobs = cfg.Run.Jobs
	}

	withNotes := cfg.Output.ShowNotes
	if cmd.Flags().Changed("with-notes") {
		withNotes, err = cmd.Flags().GetBool("with-notes")
		if err != nil {
			return checkSettings{}, err
		}
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return checkSettings{}, err
	}
	showConf, err := cmd.Flags().GetBool("confidence")
	if err != nil {
		return checkSettings{}, err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return checkSettings{}, err
	}
	pathMode := diagfmt.PathModeAuto
	if fullPath || cfg.Output.FullPaths {
		pathMode = diagfmt.PathModeAbsolute
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return checkSettings{}, err
	}
	useColor := colorFlag == "on" || cfg.Output.Color == "always"
	if colorFlag == "auto" && cfg.Output.Color != "never" {
		useColor = useColor || isTerminal(os.Stdout)
	}

	return checkSettings{
		format:    format,
		pathMode:  pathMode,
		useColor:  useColor,
		withNotes: withNotes,
		suggest:   suggest,
		showConf:  showConf,
		maxDiag:   maxDiag,
		jobs:      jobs,
		rules:     rules,
	}, nil
}

func renderResults(cmd *cobra.Command, fs *source.FileSet, results []driver.FileResult, settings checkSettings) error {
	out := cmd.OutOrStdout()

	prettyOpts := diagfmt.PrettyOpts{
		Color:          settings.useColor,
		PathMode:       settings.pathMode,
		ShowNotes:      settings.withNotes,
		ShowFixes:      settings.suggest,
		ShowConfidence: settings.showConf,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         settings.pathMode,
		Max:              settings.maxDiag,
		IncludeNotes:     settings.withNotes,
		IncludeFixes:     settings.suggest,
	}

	switch settings.format {
	case "short":
		total := driver.MergeBags(results, settings.maxDiag)
		output := diag.FormatShortDiagnostics(total.Items(), fs, settings.withNotes)
		if output != "" {
			fmt.Fprintln(out, output)
		}
	case "pretty":
		printed := false
		for _, r := range results {
			if r.Bag.Len() == 0 {
				continue
			}
			if printed {
				fmt.Fprintln(out)
			}
			printed = true
			diagfmt.Pretty(out, r.Bag, fs, prettyOpts)
		}
	case "json":
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[r.Path] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts)
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	}
	return nil
}
