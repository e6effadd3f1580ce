package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tablefmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tablefmt [file]",
	Short: "Align pipe-delimited Markdown tables",
	Long: `tablefmt reads a Markdown document from stdin or a file and prints it with
every table column-aligned by display width. Text outside tables passes
through untouched. Works well in pipes: pbpaste | tablefmt`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setupColor,
	RunE:              runRoot,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().Bool("table", false, "treat the whole input as one table (strict mode)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
