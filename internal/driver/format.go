// Package driver orchestrates formatting across many files: it expands
// paths to markdown files, runs the document scanner over each in parallel,
// and reports per-file results for the check/write/stdout CLI modes.
package driver

import (
	"bytes"
	"context"
	"errors"
	"os"

	"golang.org/x/sync/errgroup"

	"tablefmt/internal/document"
	"tablefmt/internal/source"
	"tablefmt/internal/table"
)

// Options configures a multi-file formatting run.
type Options struct {
	// Check reports whether files would change without touching them.
	Check bool
	// Write rewrites changed files in place, preserving their mode.
	Write bool
	// Jobs caps formatting concurrency; <= 0 means one worker per file.
	Jobs int
	// Limits bounds per-table size; zero axes use the defaults.
	Limits table.Limits
	// Extensions selects files when a directory is expanded.
	// Empty means .md and .markdown.
	Extensions []string
	// Cache, when non-nil, memoizes formatted output by content hash.
	Cache *Cache
}

// Result captures the outcome of formatting a single file.
type Result struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats the given files and directories (expanded recursively
// to markdown files). Results come back in collection order regardless of
// worker scheduling. The returned error covers run-level failures only;
// per-file failures are reported in Result.Err.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectFiles(ctx, paths, opts.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("fmt: no markdown files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 || jobs > len(files) {
		jobs = len(files)
	}

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatOne(path string, opts Options) Result {
	result := Result{Path: path}

	sf, err := source.Load(path)
	if err != nil {
		result.Err = err
		return result
	}

	formatted, hit := opts.Cache.Lookup(sf.Content)
	if !hit {
		formatted = []byte(document.NewScannerWithLimits(opts.Limits).Format(string(sf.Content)))
		opts.Cache.Store(sf.Content, formatted)
	}

	result.Formatted = formatted
	result.Changed = !bytes.Equal(sf.Content, formatted)

	if opts.Check || !result.Changed || !opts.Write {
		return result
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
		result.Err = err
	}
	return result
}
