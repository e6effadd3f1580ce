package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const (
	misaligned = "# Doc\n\n| a | b |\n|-|-|\n| 1 | 2 |\n"
	aligned    = "# Doc\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestFormatPathsCheckDoesNotTouchFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "doc.md", misaligned)

	results, err := FormatPaths(context.Background(), []string{dir}, Options{Check: true})
	if err != nil {
		t.Fatalf("FormatPaths returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !results[0].Changed {
		t.Fatal("expected Changed for misaligned file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to re-read fixture: %v", err)
	}
	if string(data) != misaligned {
		t.Fatalf("check mode modified the file:\n%q", data)
	}
}

func TestFormatPathsWriteRewritesChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "doc.md", misaligned)
	unchangedPath := writeFixture(t, dir, "clean.md", aligned)

	results, err := FormatPaths(context.Background(), []string{dir}, Options{Write: true})
	if err != nil {
		t.Fatalf("FormatPaths returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to re-read fixture: %v", err)
	}
	if string(data) != aligned {
		t.Fatalf("write mode output mismatch:\nwant %q\ngot  %q", aligned, data)
	}

	data, err = os.ReadFile(unchangedPath)
	if err != nil {
		t.Fatalf("failed to re-read clean fixture: %v", err)
	}
	if string(data) != aligned {
		t.Fatalf("already aligned file must not change: %q", data)
	}
}

func TestFormatPathsStdoutMode(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "doc.md", misaligned)

	results, err := FormatPaths(context.Background(), []string{path}, Options{})
	if err != nil {
		t.Fatalf("FormatPaths returned error: %v", err)
	}
	if string(results[0].Formatted) != aligned {
		t.Fatalf("formatted output mismatch:\nwant %q\ngot  %q", aligned, results[0].Formatted)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to re-read fixture: %v", err)
	}
	if string(data) != misaligned {
		t.Fatalf("default mode must not rewrite files: %q", data)
	}
}

func TestFormatPathsResultsSortedByPath(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b/second.md", misaligned)
	writeFixture(t, dir, "a/first.md", misaligned)
	writeFixture(t, dir, "a/skip.txt", misaligned)

	results, err := FormatPaths(context.Background(), []string{dir}, Options{Check: true, Jobs: 2})
	if err != nil {
		t.Fatalf("FormatPaths returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 markdown files, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "first.md" || filepath.Base(results[1].Path) != "second.md" {
		t.Fatalf("results out of order: %q, %q", results[0].Path, results[1].Path)
	}
}

func TestFormatPathsExplicitFileBypassesExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "notes.txt", misaligned)

	results, err := FormatPaths(context.Background(), []string{path}, Options{Check: true})
	if err != nil {
		t.Fatalf("FormatPaths returned error: %v", err)
	}
	if len(results) != 1 || !results[0].Changed {
		t.Fatalf("explicit file must be formatted: %+v", results)
	}
}

func TestFormatPathsNoFiles(t *testing.T) {
	if _, err := FormatPaths(context.Background(), []string{t.TempDir()}, Options{}); err == nil {
		t.Fatal("expected error when no markdown files found")
	}
}

func TestFormatPathsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := FormatPaths(ctx, []string{t.TempDir()}, Options{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestFormatPathsMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	if _, err := FormatPaths(context.Background(), []string{missing}, Options{}); err == nil {
		t.Fatal("expected error for missing path")
	}
}
