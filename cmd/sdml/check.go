package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sdml/internal/diag"
	"sdml/internal/diagfmt"
	"sdml/internal/driver"
	"sdml/internal/project"
	"sdml/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [schema.sdml | dir]",
	Short: "Run full semantic analysis over a schema file or directory",
	Long: `Check runs the whole pipeline: parsing, type resolution, relation
inference, attribute validation and model invariants. Without an argument it
looks for an sdml.toml manifest above the current directory and checks the
schema directory it points at.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "parallel analysis jobs (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "skip the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	target, err := resolveCheckTarget(args)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	var (
		fs  *source.FileSet
		bag *diag.Bag
	)
	if info.IsDir() {
		var cache *driver.DiskCache
		if !noCache {
			// кеш — ускорение: без него check просто медленнее
			cache, _ = driver.OpenDiskCache("sdml")
		}
		dirFS, results, err := driver.AnalyzeDir(cmd.Context(), target, maxDiagnostics, jobs, cache)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		fs = dirFS
		bag = diag.NewBag(maxDiagnostics * max(len(results), 1))
		for _, r := range results {
			bag.Merge(r.Bag)
		}
		bag.Sort()
	} else {
		result, err := driver.Analyze(target, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		fs = result.FileSet
		bag = result.Bag
	}

	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, bag, fs, opts)
		if !bag.HasErrors() {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			Max:              maxDiagnostics,
		}
		if err := diagfmt.JSON(os.Stdout, bag, fs, jsonOpts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

// resolveCheckTarget maps the optional argument to a concrete path. Without
// an argument the nearest sdml.toml decides what to check.
func resolveCheckTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := project.LoadManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no sdml.toml found\nplease specify the schema explicitly, e.g.:\n  sdml check path/to/schema.sdml")
	}
	return manifest.SchemaDir(), nil
}
