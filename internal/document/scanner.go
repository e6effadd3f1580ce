// Package document applies the table formatter selectively inside a larger
// Markdown document, leaving everything that is not a table untouched.
package document

import (
	"strings"

	"tablefmt/internal/table"
)

// Scanner walks a document line by line, hands maximal contiguous runs of
// pipe-containing lines to the table formatter, and splices the formatted
// result back between the surrounding verbatim text. A Scanner is not safe
// for concurrent use; independent Scanners are.
type Scanner struct {
	formatter *table.Formatter
}

// NewScanner returns a Scanner using the default table size limits.
func NewScanner() *Scanner {
	return &Scanner{formatter: table.NewFormatter()}
}

// NewScannerWithLimits returns a Scanner whose table formatting uses the
// given size limits.
func NewScannerWithLimits(limits table.Limits) *Scanner {
	return &Scanner{formatter: table.NewFormatterWithLimits(limits)}
}

// Format returns doc with every confidently identified table block aligned
// and all other lines copied through verbatim. It never fails: a candidate
// block the formatter rejects falls back to verbatim passthrough of its
// first line, and scanning resumes on the next line. The presence or
// absence of a final trailing newline matches the source exactly.
func Format(doc string) string {
	return NewScanner().Format(doc)
}

// Format scans one document. See the package-level Format for semantics.
func (s *Scanner) Format(doc string) string {
	trailingNewline := strings.HasSuffix(doc, "\n")
	lines := strings.Split(doc, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}

	out := make([]string, 0, len(lines))
	inFence := false

	for i := 0; i < len(lines); {
		line := lines[i]

		if isFenceDelimiter(line) {
			inFence = !inFence
			out = append(out, line)
			i++
			continue
		}
		if inFence || !isCandidate(line) {
			out = append(out, line)
			i++
			continue
		}

		// Greedy: a table is a maximal contiguous run of pipe lines; a
		// single line without a pipe unambiguously ends it.
		end := i + 1
		for end < len(lines) && strings.Contains(lines[end], "|") {
			end++
		}

		block := strings.Join(lines[i:end], "\n")
		formatted, err := s.formatter.Format(block)
		if err != nil {
			// Not a table after all. Emit only the first line and give
			// the rest of the span a fresh chance to start one.
			out = append(out, line)
			i++
			continue
		}

		out = append(out, strings.Split(strings.TrimSuffix(formatted, "\n"), "\n")...)
		i = end
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}

// isFenceDelimiter reports whether the line opens or closes a fenced code
// block. Content between fences is never treated as a table.
func isFenceDelimiter(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// isCandidate reports whether the line may start a table: it begins with a
// pipe, or more loosely contains one. This is a heuristic classifier; the
// formatter's own validation is the real gate.
func isCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "|") {
		return true
	}
	return strings.Contains(trimmed, "|")
}
