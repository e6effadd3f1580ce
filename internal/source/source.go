// Package source loads input text for formatting: files or a piped stream,
// size-bounded, with BOM removal and CRLF normalization applied up front so
// the core only ever sees clean LF-separated UTF-8.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxInputSize is the ceiling on input size before the core is invoked.
const MaxInputSize = 10 * 1024 * 1024 // 10 MiB

// FileFlags encodes what normalization happened on load.
type FileFlags uint8

const (
	// FileVirtual indicates the content came from memory (stdin, tests).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped.
	FileHadBOM
	// FileNormalizedCRLF indicates at least one CRLF was rewritten to LF.
	FileNormalizedCRLF
)

// File is one loaded input: its origin path (or a synthetic name for
// virtual inputs) and the normalized content.
type File struct {
	Path    string
	Content []byte
	Flags   FileFlags
}

// Load reads a file from disk, enforcing the size cap and normalizing
// BOM/CRLF. Failures carry actionable hints for the user.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("file not found: %s\nhint: check the file path is correct", path)
		case errors.Is(err, os.ErrPermission):
			return nil, fmt.Errorf("permission denied: %s\nhint: check file permissions with: ls -l %s", path, path)
		default:
			return nil, fmt.Errorf("cannot access file %s: %w", path, err)
		}
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s\nhint: provide a path to a text file containing a Markdown table", path)
	}
	if info.Size() > MaxInputSize {
		return nil, fmt.Errorf("file too large: %.2f MB (max %.2f MB)",
			float64(info.Size())/(1<<20), float64(MaxInputSize)/(1<<20))
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return newFile(path, content, 0), nil
}

// ReadStdin drains r up to the size cap. Input at or over the cap is an
// error, never a silent truncation.
func ReadStdin(r io.Reader) (*File, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxInputSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(content) >= MaxInputSize {
		return nil, fmt.Errorf("input too large (max %.2f MB)", float64(MaxInputSize)/(1<<20))
	}
	return newFile("<stdin>", content, FileVirtual), nil
}

// NewVirtual wraps in-memory content (tests, generated input) as a File.
func NewVirtual(name string, content []byte) *File {
	return newFile(name, content, FileVirtual)
}

func newFile(path string, content []byte, flags FileFlags) *File {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return &File{Path: path, Content: content, Flags: flags}
}
