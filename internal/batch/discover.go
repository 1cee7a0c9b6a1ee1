package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when the input path does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrNotPNG is returned when a single-file input is not a .png file.
	ErrNotPNG = errors.New("not a png file")
)

// IsPNG reports whether path has a .png extension, in any letter case.
func IsPNG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}

// FindPNGs lists the PNG files directly inside dir, sorted by name.
//
// The search is not recursive and matches the extension case-insensitively,
// so "a.png", "b.PNG" and "c.Png" are all found. Directories named like PNG
// files are skipped.
func FindPNGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsPNG(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}

// CollectOptions tunes CollectPNGs.
type CollectOptions struct {
	// ExcludeSubstring drops directory matches whose path contains it.
	// Empty means no exclusion. Does not apply to a single-file input.
	ExcludeSubstring string
}

// CollectPNGs resolves a file-or-directory argument into the PNG files to process.
//
// Returns:
//   - a single-element slice when path is a .png file
//   - the non-recursive PNG listing when path is a directory (possibly empty)
//   - ErrNotFound when path does not exist
//   - ErrNotPNG when path is a file without a .png extension
func CollectPNGs(path string, opts CollectOptions) ([]string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	if !stat.IsDir() {
		if !IsPNG(path) {
			return nil, fmt.Errorf("%w: %s", ErrNotPNG, path)
		}
		return []string{path}, nil
	}

	files, err := FindPNGs(path)
	if err != nil {
		return nil, err
	}
	if opts.ExcludeSubstring == "" {
		return files, nil
	}

	kept := files[:0]
	for _, f := range files {
		if !strings.Contains(f, opts.ExcludeSubstring) {
			kept = append(kept, f)
		}
	}
	return kept, nil
}
