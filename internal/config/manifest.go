// Package config locates and decodes the optional tablefmt.toml manifest,
// which overrides table size limits and the set of file extensions the
// multi-file driver picks up.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"tablefmt/internal/table"
)

// ManifestName is the file looked up when walking toward the filesystem root.
const ManifestName = "tablefmt.toml"

// Manifest is a located and decoded tablefmt.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest structure. Every section is optional.
type Config struct {
	Limits LimitsConfig `toml:"limits"`
	Files  FilesConfig  `toml:"files"`
}

// LimitsConfig overrides the table size caps. Zero means "use the default".
type LimitsConfig struct {
	MaxRows    int64 `toml:"max_rows"`
	MaxColumns int64 `toml:"max_columns"`
	MaxCells   int64 `toml:"max_cells"`
}

// FilesConfig controls which files the driver collects from directories.
type FilesConfig struct {
	Extensions []string `toml:"extensions"`
}

// Find walks up from startDir to locate tablefmt.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest manifest. ok is false when none exists
// between startDir and the filesystem root.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decode(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

func decode(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if meta.IsDefined("limits") {
		for key, v := range map[string]int64{
			"max_rows":    cfg.Limits.MaxRows,
			"max_columns": cfg.Limits.MaxColumns,
			"max_cells":   cfg.Limits.MaxCells,
		} {
			if meta.IsDefined("limits", key) && v <= 0 {
				return Config{}, fmt.Errorf("%s: [limits].%s must be positive, got %d", path, key, v)
			}
		}
	}
	if meta.IsDefined("files", "extensions") {
		for _, ext := range cfg.Files.Extensions {
			if !strings.HasPrefix(ext, ".") {
				return Config{}, fmt.Errorf("%s: [files].extensions entry %q must start with a dot", path, ext)
			}
		}
	}
	return cfg, nil
}

// TableLimits merges the manifest overrides onto the default size caps.
func (m *Manifest) TableLimits() (table.Limits, error) {
	limits := table.DefaultLimits()
	if m == nil {
		return limits, nil
	}

	var err error
	if m.Config.Limits.MaxRows > 0 {
		if limits.MaxRows, err = safecast.Conv[int](m.Config.Limits.MaxRows); err != nil {
			return limits, fmt.Errorf("%s: [limits].max_rows: %w", m.Path, err)
		}
	}
	if m.Config.Limits.MaxColumns > 0 {
		if limits.MaxColumns, err = safecast.Conv[int](m.Config.Limits.MaxColumns); err != nil {
			return limits, fmt.Errorf("%s: [limits].max_columns: %w", m.Path, err)
		}
	}
	if m.Config.Limits.MaxCells > 0 {
		if limits.MaxCells, err = safecast.Conv[int](m.Config.Limits.MaxCells); err != nil {
			return limits, fmt.Errorf("%s: [limits].max_cells: %w", m.Path, err)
		}
	}
	return limits, nil
}

// Extensions returns the configured directory-walk extensions, or the
// defaults when unset.
func (m *Manifest) Extensions() []string {
	if m == nil || len(m.Config.Files.Extensions) == 0 {
		return []string{".md", ".markdown"}
	}
	return m.Config.Files.Extensions
}
