package table

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 6},
		{"\U0001F600", 2}, // emoji
		{"e\u0301", 1},    // e + combining acute
		{"\u200b", 0},     // zero-width space
		{"mixed 日本", 10},  // 6 narrow runes + 2 wide runes
		{"caf\u00e9", 4},  // precomposed
	}

	for _, tt := range tests {
		if got := displayWidth(tt.input); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestIsDashRun(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"-", true},
		{"----", true},
		{"-x-", false},
		{":-", false},
		{" - ", false},
	}

	for _, tt := range tests {
		if got := isDashRun(tt.input); got != tt.want {
			t.Errorf("isDashRun(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmptyInput, "EmptyInput"},
		{KindMissingSeparator, "MissingSeparator"},
		{KindInvalidStructure, "InvalidStructure"},
		{KindTableTooLarge, "TableTooLarge"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
