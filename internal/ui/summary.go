// Package ui renders terminal summaries for multi-file formatting runs.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tablefmt/internal/driver"
)

// SummaryOptions controls summary rendering.
type SummaryOptions struct {
	// Color enables lipgloss styling; off means plain text for pipes.
	Color bool
	// Width is the terminal width used for path truncation; <= 0 means 80.
	Width int
}

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	countStyle   = lipgloss.NewStyle().Bold(true)
)

// RenderSummary writes one status line per file plus a totals footer.
func RenderSummary(w io.Writer, results []driver.Result, opts SummaryOptions) {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	// status column plus separators
	pathWidth := width - 12
	if pathWidth < 20 {
		pathWidth = 20
	}

	var changed, failed int
	for _, res := range results {
		path := truncatePath(res.Path, pathWidth)
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(w, "%s  %s: %v\n", styled(errStyle, "error", opts.Color), path, res.Err)
		case res.Changed:
			changed++
			fmt.Fprintf(w, "%s  %s\n", styled(changedStyle, "changed", opts.Color), path)
		default:
			fmt.Fprintf(w, "%s  %s\n", styled(okStyle, "ok", opts.Color), path)
		}
	}

	total := fmt.Sprintf("%d file(s), %d changed, %d failed", len(results), changed, failed)
	fmt.Fprintln(w, styled(countStyle, total, opts.Color))
}

func styled(style lipgloss.Style, s string, color bool) string {
	if !color {
		return s
	}
	return style.Render(s)
}

// truncatePath shortens a path to the given display width, measuring in
// terminal columns so wide runes in file names don't break the layout.
func truncatePath(path string, width int) string {
	if runewidth.StringWidth(path) <= width {
		return path
	}
	if width <= 3 {
		return runewidth.Truncate(path, width, "")
	}
	return runewidth.Truncate(path, width-3, "...")
}
