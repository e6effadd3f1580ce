package table

import (
	"fmt"
	"strings"
)

// Formatter aligns one pipe-delimited table at a time. The zero value is
// not ready for use; construct with NewFormatter or NewFormatterWithLimits.
//
// A Formatter holds transient parse state and fully resets it on every
// Format call, so instances may be reused across calls (including after a
// failed call). A single instance must not be used from more than one
// goroutine at a time; independent instances are safe to use concurrently.
type Formatter struct {
	limits Limits
	cells  [][]string
	widths []int
}

// NewFormatter returns a Formatter with the default size limits.
func NewFormatter() *Formatter {
	return &Formatter{limits: DefaultLimits()}
}

// NewFormatterWithLimits returns a Formatter with the given size limits.
// Non-positive axes fall back to their defaults.
func NewFormatterWithLimits(limits Limits) *Formatter {
	return &Formatter{limits: limits.orDefaults()}
}

// Format parses raw pipe-delimited text and returns the column-aligned
// rendering, every row terminated by a single newline. On failure it
// returns a *Error; see the Kind constants for the taxonomy.
func Format(text string) (string, error) {
	return NewFormatter().Format(text)
}

// Format aligns one table. Prior call state never leaks into the result.
func (f *Formatter) Format(text string) (string, error) {
	f.reset()
	if err := f.parse(text); err != nil {
		return "", err
	}
	if err := f.validate(); err != nil {
		return "", err
	}
	f.addMissingCells()
	f.padCells()
	return f.render(), nil
}

func (f *Formatter) reset() {
	f.cells = f.cells[:0]
	f.widths = f.widths[:0]
}

// parse splits the input into trimmed cells, normalizes dash runs in the
// separator row to a single-dash marker, and trims spurious edge columns
// produced by boundary pipes.
func (f *Formatter) parse(text string) error {
	lines := strings.Split(text, "\n")

	// Leading lines without a pipe are not part of the table.
	start := 0
	for start < len(lines) && !strings.Contains(lines[start], "|") {
		start++
	}

	rowIdx := 0
	for _, line := range lines[start:] {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.Split(line, "|")
		row := make([]string, 0, len(parts))
		for _, part := range parts {
			cell := strings.TrimSpace(part)
			// The separator is a width-independent marker; its real
			// width is restored during padding.
			if rowIdx == 1 && isDashRun(cell) {
				cell = "-"
			}
			row = append(row, cell)
		}
		f.cells = append(f.cells, row)
		rowIdx++
	}

	if len(f.cells) == 0 {
		return &Error{Kind: KindEmptyInput}
	}

	f.computeWidths()
	f.trimEdgeColumns()
	return nil
}

// computeWidths derives the per-column maximum display width across all
// rows. Rows of uneven length are tolerated; missing cells contribute 0.
func (f *Formatter) computeWidths() {
	f.widths = f.widths[:0]
	for _, row := range f.cells {
		for colIdx, cell := range row {
			w := displayWidth(cell)
			if colIdx >= len(f.widths) {
				f.widths = append(f.widths, w)
			} else if f.widths[colIdx] < w {
				f.widths[colIdx] = w
			}
		}
	}
}

// trimEdgeColumns drops the empty boundary columns that splitting
// "| a | b |" on '|' produces, so that both "| a | b |" and bare "a | b"
// input styles parse to the same grid.
func (f *Formatter) trimEdgeColumns() {
	if len(f.widths) > 0 && f.widths[0] == 0 {
		for i := range f.cells {
			if len(f.cells[i]) > 0 {
				f.cells[i] = f.cells[i][1:]
			}
		}
		f.computeWidths()
	}

	if n := len(f.widths); n > 0 && f.widths[n-1] == 0 {
		for i, row := range f.cells {
			// Only pop rows that actually reach the last column;
			// shorter rows never contributed to it.
			if len(row) == n {
				f.cells[i] = row[:n-1]
			}
		}
		f.computeWidths()
	}
}

func (f *Formatter) validate() error {
	if len(f.cells) < 2 {
		return &Error{Kind: KindMissingSeparator, Rows: len(f.cells)}
	}
	for colIdx, cell := range f.cells[1] {
		if !isDashRun(cell) {
			return &Error{
				Kind:   KindInvalidStructure,
				Detail: fmt.Sprintf("separator cell %d is %q, want a run of dashes", colIdx, cell),
			}
		}
	}

	rows := len(f.cells)
	cols := len(f.widths)
	cells := rows * cols
	if rows > f.limits.MaxRows || cols > f.limits.MaxColumns || cells > f.limits.MaxCells {
		return &Error{
			Kind:    KindTableTooLarge,
			Rows:    rows,
			Columns: cols,
			Cells:   cells,
			Limits:  f.limits,
		}
	}
	return nil
}

// addMissingCells pads short rows with empty trailing cells until every
// row has exactly one cell per column.
func (f *Formatter) addMissingCells() {
	for i := range f.cells {
		for len(f.cells[i]) < len(f.widths) {
			f.cells[i] = append(f.cells[i], "")
		}
	}
}

// padCells right-pads every cell to its column's display width: spaces for
// header and data rows, dashes for the separator row.
func (f *Formatter) padCells() {
	for rowIdx, row := range f.cells {
		fill := " "
		if rowIdx == 1 {
			fill = "-"
		}
		for colIdx, cell := range row {
			if gap := f.widths[colIdx] - displayWidth(cell); gap > 0 {
				row[colIdx] = cell + strings.Repeat(fill, gap)
			}
		}
	}
}

func (f *Formatter) render() string {
	var b strings.Builder

	b.WriteString("| ")
	b.WriteString(strings.Join(f.cells[0], " | "))
	b.WriteString(" |\n")

	b.WriteString("|-")
	b.WriteString(strings.Join(f.cells[1], "-|-"))
	b.WriteString("-|\n")

	for _, row := range f.cells[2:] {
		b.WriteString("| ")
		b.WriteString(strings.Join(row, " | "))
		b.WriteString(" |\n")
	}
	return b.String()
}
