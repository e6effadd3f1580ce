package table

import (
	"errors"
	"fmt"
)

// Kind classifies a table formatting failure.
type Kind uint8

const (
	// KindEmptyInput means the input held no table content at all.
	KindEmptyInput Kind = iota
	// KindMissingSeparator means fewer than two rows were found.
	KindMissingSeparator
	// KindInvalidStructure means the separator row failed the
	// all-dashes-per-cell check.
	KindInvalidStructure
	// KindTableTooLarge means a configured size cap was exceeded.
	KindTableTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "EmptyInput"
	case KindMissingSeparator:
		return "MissingSeparator"
	case KindInvalidStructure:
		return "InvalidStructure"
	case KindTableTooLarge:
		return "TableTooLarge"
	}
	return "Unknown"
}

// Error is the single failure type returned by Format. It carries enough
// structured detail to build a precise message without re-deriving counts.
type Error struct {
	Kind    Kind
	Rows    int
	Columns int
	Cells   int
	Limits  Limits
	Detail  string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "empty input: no table content found"
	case KindMissingSeparator:
		return fmt.Sprintf("missing separator: got %d row(s), need a header and a separator row", e.Rows)
	case KindInvalidStructure:
		if e.Detail != "" {
			return "invalid table structure: " + e.Detail
		}
		return "invalid table structure"
	case KindTableTooLarge:
		return fmt.Sprintf("table too large: %d rows (max %d), %d columns (max %d), %d cells (max %d)",
			e.Rows, e.Limits.MaxRows, e.Columns, e.Limits.MaxColumns, e.Cells, e.Limits.MaxCells)
	}
	return "unknown table error"
}

// IsKind reports whether err is a table *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == kind
}
