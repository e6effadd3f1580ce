package table

import "github.com/mattn/go-runewidth"

// displayWidth measures a string in terminal display columns: combining
// marks and zero-width runes count 0, East-Asian wide runes and most emoji
// count 2, everything else 1. Byte and codepoint counts are never used for
// alignment.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// isDashRun reports whether s is non-empty and consists solely of '-'.
func isDashRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '-' {
			return false
		}
	}
	return true
}
