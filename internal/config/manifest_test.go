package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tablefmt/internal/table"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadWalksUpToManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[limits]\nmax_rows = 50\n")

	nested := filepath.Join(root, "docs", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	m, ok, err := Load(nested)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found from nested dir")
	}
	if m.Root != root && m.Root != mustEval(t, root) {
		t.Fatalf("unexpected root %q, want %q", m.Root, root)
	}
	if m.Config.Limits.MaxRows != 50 {
		t.Fatalf("max_rows = %d, want 50", m.Config.Limits.MaxRows)
	}
}

// mustEval resolves symlinks so tmpdir paths compare equal on darwin.
func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("EvalSymlinks(%q): %v", path, err)
	}
	return resolved
}

func TestLoadNoManifest(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ok || m != nil {
		t.Fatalf("expected no manifest, got ok=%v m=%v", ok, m)
	}
}

func TestTableLimitsOverrides(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[limits]\nmax_rows = 10\nmax_columns = 5\n")

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}

	limits, err := m.TableLimits()
	if err != nil {
		t.Fatalf("TableLimits returned error: %v", err)
	}
	want := table.Limits{MaxRows: 10, MaxColumns: 5, MaxCells: table.DefaultLimits().MaxCells}
	if limits != want {
		t.Fatalf("limits = %+v, want %+v", limits, want)
	}
}

func TestTableLimitsNilManifestDefaults(t *testing.T) {
	var m *Manifest
	limits, err := m.TableLimits()
	if err != nil {
		t.Fatalf("TableLimits returned error: %v", err)
	}
	if limits != table.DefaultLimits() {
		t.Fatalf("limits = %+v, want defaults", limits)
	}
	if got := m.Extensions(); len(got) != 2 || got[0] != ".md" {
		t.Fatalf("unexpected default extensions %v", got)
	}
}

func TestDecodeRejectsNonPositiveLimit(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[limits]\nmax_rows = 0\n")

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for non-positive limit")
	}
	if !strings.Contains(err.Error(), "max_rows must be positive") {
		t.Fatalf("unexpected message: %q", err)
	}
}

func TestDecodeRejectsBadExtension(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[files]\nextensions = [\"md\"]\n")

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for extension without dot")
	}
	if !strings.Contains(err.Error(), "must start with a dot") {
		t.Fatalf("unexpected message: %q", err)
	}
}

func TestExtensionsOverride(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[files]\nextensions = [\".md\", \".mdx\"]\n")

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	got := m.Extensions()
	if len(got) != 2 || got[1] != ".mdx" {
		t.Fatalf("unexpected extensions %v", got)
	}
}
