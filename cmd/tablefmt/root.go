package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tablefmt/internal/config"
	"tablefmt/internal/document"
	"tablefmt/internal/source"
	"tablefmt/internal/table"
)

// runRoot is the single-input path: read stdin or one file, format, print.
func runRoot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	tableOnly, err := cmd.Flags().GetBool("table")
	if err != nil {
		return err
	}

	var sf *source.File
	if len(args) == 1 {
		sf, err = source.Load(args[0])
	} else {
		sf, err = source.ReadStdin(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	limits, err := loadLimits(".")
	if err != nil {
		return err
	}

	if tableOnly {
		out, err := table.NewFormatterWithLimits(limits).Format(string(sf.Content))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), document.NewScannerWithLimits(limits).Format(string(sf.Content)))
	return nil
}

// loadLimits applies tablefmt.toml overrides when a manifest is in scope.
func loadLimits(startDir string) (table.Limits, error) {
	manifest, ok, err := config.Load(startDir)
	if err != nil {
		return table.Limits{}, err
	}
	if !ok {
		return table.DefaultLimits(), nil
	}
	return manifest.TableLimits()
}
