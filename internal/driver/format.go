// Package driver orchestrates formatting over files and directories:
// collection, per-file formatting, and write-back. Files are formatted
// in parallel; each file, and therefore each comment, is confined to a
// single goroutine, so the comment merge step stays single-writer.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"quill/internal/format"
	"quill/internal/observ"
	"quill/internal/source"
)

// FormatOptions configures comment formatting across paths.
type FormatOptions struct {
	// Check reports needed changes without touching files.
	Check bool
	// Stdout returns formatted content instead of rewriting files.
	Stdout bool
	// Extensions filters which files a directory walk picks up.
	Extensions []string
	// Options is forwarded to the per-file formatter.
	Options format.Options
	// Timer, when set, records collection and formatting phases.
	Timer *observ.Timer
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats the provided files or directories (recursively
// collecting files matching the configured extensions). When opts.Check
// is true, files are not modified; Changed indicates whether formatting
// would update the contents. When opts.Stdout is true, formatted content
// is returned in the results without touching files on disk.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collectPhase := -1
	if opts.Timer != nil {
		collectPhase = opts.Timer.Begin("collect")
	}
	files, err := collectSourceFiles(ctx, paths, opts.Extensions)
	if opts.Timer != nil {
		opts.Timer.End(collectPhase, fmt.Sprintf("%d files", len(files)))
	}
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	formatPhase := -1
	if opts.Timer != nil {
		formatPhase = opts.Timer.Begin("format")
	}
	results := make([]FormatResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(path, opts)
			return nil
		})
	}
	err = g.Wait()
	if opts.Timer != nil {
		opts.Timer.End(formatPhase, "")
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

func formatOne(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	formatted, changed, err := formatSingleFile(path, opts)
	if err != nil {
		result.Err = err
		return result
	}

	if opts.Check {
		result.Changed = changed
		return result
	}

	if opts.Stdout {
		result.Formatted = formatted
		result.Changed = changed
		return result
	}

	if changed {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			result.Err = err
		} else {
			result.Changed = true
		}
	}
	return result
}

func formatSingleFile(path string, opts FormatOptions) (formatted []byte, changed bool, err error) {
	fileSet := source.NewFileSet()
	if _, err := fileSet.Load(path); err != nil {
		return nil, false, err
	}
	sf, ok := fileSet.GetByPath(path)
	if !ok {
		return nil, false, fmt.Errorf("%s: not registered after load", path)
	}

	formatted, err = format.FormatFile(sf, opts.Options)
	if err != nil {
		return nil, false, err
	}
	return formatted, !bytes.Equal(sf.Content, formatted), nil
}

func collectSourceFiles(ctx context.Context, paths []string, extensions []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if slices.Contains(extensions, filepath.Ext(path)) {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// Explicitly named files skip the extension filter.
		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}
