package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tablefmt/internal/config"
	"tablefmt/internal/driver"
	"tablefmt/internal/ui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format markdown files or directories",
	Long: `Format every markdown file under the given paths, aligning all tables.
By default changed files are rewritten in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that would change without rewriting them")
	fmtCmd.Flags().Bool("stdout", false, "print formatted content to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "number of files formatted concurrently (0 = one worker per file)")
	fmtCmd.Flags().Bool("cache", false, "reuse formatted output cached from previous runs")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}

	if toStdout && check {
		return reportError(cmd, fmt.Errorf("fmt: --stdout cannot be used with --check"))
	}

	manifest, _, err := config.Load(".")
	if err != nil {
		return reportError(cmd, err)
	}
	limits, err := manifest.TableLimits()
	if err != nil {
		return reportError(cmd, err)
	}

	opts := driver.Options{
		Check:      check,
		Write:      !check && !toStdout,
		Jobs:       jobs,
		Limits:     limits,
		Extensions: manifest.Extensions(),
	}
	if useCache {
		cache, cacheErr := driver.OpenCache("tablefmt")
		if cacheErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", cacheErr)
		} else {
			opts.Cache = cache
		}
	}

	results, err := driver.FormatPaths(cmd.Context(), args, opts)
	if err != nil {
		return reportError(cmd, err)
	}

	if toStdout {
		return renderFmtStdout(cmd, results)
	}

	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	mode, err := readColorMode(value)
	if err != nil {
		return err
	}
	ui.RenderSummary(cmd.ErrOrStderr(), results, ui.SummaryOptions{
		Color: shouldColor(mode, os.Stderr),
	})

	var failed, changed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if res.Changed {
			changed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("fmt: failed to format %d file(s)", failed)
	}
	if check && changed > 0 {
		return fmt.Errorf("fmt: %d file(s) need formatting", changed)
	}
	return nil
}

func renderFmtStdout(cmd *cobra.Command, results []driver.Result) error {
	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
			continue
		}
		if _, err := cmd.OutOrStdout().Write(res.Formatted); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("fmt: failed to format %d file(s)", failed)
	}
	return nil
}

// reportError prints err to stderr before returning it, since runFmt
// silences cobra's own error rendering.
func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	return err
}
