// Package table turns raw pipe-delimited Markdown table text into a
// column-aligned rendering.
//
// # Purpose
//
//   - Parse a single table block into a rectangular grid of cells.
//   - Measure cell widths in terminal display columns (wide CJK runes count
//     as 2, combining marks as 0) so Unicode content lines up.
//   - Normalize the separator row, pad every cell to its column width, and
//     render the aligned text back out.
//
// # Data model
//
// A Formatter holds the transient parse state for one table: the cell grid
// and the derived per-column widths. Row 0 is the header, row 1 the
// separator, rows >= 2 are data. After validation every row has exactly
// len(widths) cells.
//
// # Errors
//
// Format fails with a *Error carrying one of four kinds: KindEmptyInput,
// KindMissingSeparator, KindInvalidStructure, KindTableTooLarge. Size limits
// are checked before any O(rows x cols) padding work begins. Once validation
// passes, padding and rendering cannot fail.
//
// The package performs no IO. Document-level scanning (applying the
// formatter selectively inside a larger text) lives in internal/document.
package table
